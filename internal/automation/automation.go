package automation

import (
	"context"
	"fmt"
	"strings"
)

// Client is a connection to a running mail client.
type Client interface {
	// OpenItems lists the currently open item windows that expose an item.
	OpenItems(ctx context.Context) ([]Item, error)
}

// Item is the current item of one open window.
type Item interface {
	Subject() (string, error)
	SetSubject(subject string) error
	SaveAs(path string, format SaveFormat) error
	Close(discard bool) error
}

// SaveFormat selects the document type written by Item.SaveAs. Bindings map
// it to their client's own format codes; the zero value is not a format.
type SaveFormat int

const (
	FormatTXT SaveFormat = iota + 1
	FormatRTF
	FormatTemplate
	FormatMSG
	FormatDOC
	FormatHTML
	FormatVCard
	FormatVCal
	FormatICal
	FormatMSGUnicode
	FormatMHT
)

var formatNames = map[SaveFormat]string{
	FormatTXT:        "txt",
	FormatRTF:        "rtf",
	FormatTemplate:   "oft",
	FormatMSG:        "msg",
	FormatDOC:        "doc",
	FormatHTML:       "html",
	FormatVCard:      "vcf",
	FormatVCal:       "vcs",
	FormatICal:       "ics",
	FormatMSGUnicode: "msg-unicode",
	FormatMHT:        "mht",
}

func (f SaveFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("SaveFormat(%d)", int(f))
}

// ParseSaveFormat maps a format name such as "doc" or "rtf" to a SaveFormat.
func ParseSaveFormat(name string) (SaveFormat, error) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))

	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("unknown save format %q", name)
}
