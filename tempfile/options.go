package tempfile

import "os"

// Options control where and how temporary files and directories are created.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Dir is the target directory. Defaults to the system temp root. A
	// directory that had to be created is itself tracked for cleanup;
	// implicit ancestors are not.
	Dir string

	// Prefix is prepended to generated names. Defaults to "temp-".
	Prefix string

	// Keep prevents the created path from being registered for automatic
	// cleanup at process termination.
	Keep bool

	// Mode is the permission mode of the created file or directory.
	// Defaults to 0o600 for files and 0o700 for directories.
	Mode os.FileMode

	// Delimiter separates CSV cells. Defaults to ','.
	Delimiter rune
}

const (
	defaultPrefix   = "temp-"
	defaultFileMode = os.FileMode(0o600)
	defaultDirMode  = os.FileMode(0o700)
)

func (o *Options) dir() string {
	if o == nil {
		return ""
	}

	return o.Dir
}

func (o *Options) prefix() string {
	if o == nil || o.Prefix == "" {
		return defaultPrefix
	}

	return o.Prefix
}

func (o *Options) keep() bool {
	return o != nil && o.Keep
}

func (o *Options) fileMode() os.FileMode {
	if o == nil || o.Mode == 0 {
		return defaultFileMode
	}

	return o.Mode
}

func (o *Options) dirMode() os.FileMode {
	if o == nil || o.Mode == 0 {
		return defaultDirMode
	}

	return o.Mode
}

func (o *Options) delimiter() rune {
	if o == nil || o.Delimiter == 0 {
		return ','
	}

	return o.Delimiter
}
