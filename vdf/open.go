package vdf

import (
	"bytes"

	"github.com/steamkit/vdf/internal/mmfile"
)

// OpenAppInfo maps the file at path and decodes it. The mapping is released
// before returning; the decoded collection owns all of its data.
func OpenAppInfo(path string) (*AppInfo, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return ReadAppInfo(bytes.NewReader(data))
}

// OpenPackageInfo maps the file at path and decodes it.
func OpenPackageInfo(path string) (*PackageInfo, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return ReadPackageInfo(bytes.NewReader(data))
}
