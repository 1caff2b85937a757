// Package outlook drives a local Outlook instance over COM automation.
//
// COM objects are bound to the thread that created them: a Client must be
// used from the goroutine that called Connect, which is locked to its OS
// thread until Close. COM is only available on Windows; elsewhere Connect
// fails.
package outlook

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/emurenMRz/eml2doc/internal/automation"
	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

const progID = "Outlook.Application"

// olInspectorClose values.
const (
	olSave    = 0
	olDiscard = 1
)

// olSaveAsType codes accepted by MailItem.SaveAs.
var olSaveAsType = map[automation.SaveFormat]int32{
	automation.FormatTXT:        0,
	automation.FormatRTF:        1,
	automation.FormatTemplate:   2,
	automation.FormatMSG:        3,
	automation.FormatDOC:        4,
	automation.FormatHTML:       5,
	automation.FormatVCard:      6,
	automation.FormatVCal:       7,
	automation.FormatICal:       8,
	automation.FormatMSGUnicode: 9,
	automation.FormatMHT:        10,
}

func saveAsType(format automation.SaveFormat) (int32, error) {
	code, ok := olSaveAsType[format]
	if !ok {
		return 0, fmt.Errorf("unsupported save format %v", format)
	}
	return code, nil
}

// sFalse is returned by CoInitializeEx when COM is already initialized on
// this thread.
const sFalse = 0x00000001

type Client struct {
	app  *ole.IDispatch
	held []*ole.IDispatch // released before the next scan and on Close
}

var _ automation.Client = (*Client)(nil)

// Connect attaches to the running Outlook instance, starting one if needed.
func Connect() (*Client, error) {
	runtime.LockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("failed to initialize COM: %w", err)
		}
	}

	unknown, err := oleutil.GetActiveObject(progID)
	if err != nil {
		if unknown, err = oleutil.CreateObject(progID); err != nil {
			ole.CoUninitialize()
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("failed to start %s: %w", progID, err)
		}
	}
	defer unknown.Release()

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("failed to query %s dispatch: %w", progID, err)
	}

	return &Client{app: app}, nil
}

// Close releases every COM object held by the client.
func (c *Client) Close() error {
	c.release()
	c.app.Release()

	ole.CoUninitialize()
	runtime.UnlockOSThread()

	return nil
}

// OpenItems enumerates Application.Inspectors and returns the CurrentItem of
// each inspector that has one.
func (c *Client) OpenItems(ctx context.Context) ([]automation.Item, error) {
	c.release()

	inspectors, err := c.dispatch(c.app, "Inspectors")
	if err != nil {
		return nil, err
	}

	countVar, err := oleutil.GetProperty(inspectors, "Count")
	if err != nil {
		return nil, fmt.Errorf("failed to count inspectors: %w", err)
	}
	count, ok := countVar.Value().(int32)
	if !ok {
		return nil, fmt.Errorf("unexpected inspector count %v", countVar.Value())
	}

	var items []automation.Item

	// Inspectors is a 1-based collection.
	for i := 1; i <= int(count); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		inspector, err := c.call(inspectors, "Item", i)
		if err != nil {
			return nil, err
		}
		if inspector == nil {
			continue
		}

		current, err := c.dispatch(inspector, "CurrentItem")
		if err != nil {
			return nil, err
		}
		if current == nil {
			continue
		}

		items = append(items, &item{disp: current})
	}

	return items, nil
}

// dispatch reads an object-valued property; it returns nil for an empty one.
func (c *Client) dispatch(obj *ole.IDispatch, name string) (*ole.IDispatch, error) {
	v, err := oleutil.GetProperty(obj, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	return c.hold(v), nil
}

func (c *Client) call(obj *ole.IDispatch, name string, params ...interface{}) (*ole.IDispatch, error) {
	v, err := oleutil.CallMethod(obj, name, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", name, err)
	}
	return c.hold(v), nil
}

func (c *Client) hold(v *ole.VARIANT) *ole.IDispatch {
	if v.VT != ole.VT_DISPATCH {
		_ = v.Clear()
		return nil
	}

	disp := v.ToIDispatch()
	if disp == nil {
		return nil
	}

	c.held = append(c.held, disp)
	return disp
}

func (c *Client) release() {
	for _, disp := range c.held {
		disp.Release()
	}
	c.held = nil
}

type item struct {
	disp *ole.IDispatch
}

func (i *item) Subject() (string, error) {
	v, err := oleutil.GetProperty(i.disp, "Subject")
	if err != nil {
		return "", fmt.Errorf("failed to get Subject: %w", err)
	}
	defer v.Clear()

	return v.ToString(), nil
}

func (i *item) SetSubject(subject string) error {
	if _, err := oleutil.PutProperty(i.disp, "Subject", subject); err != nil {
		return fmt.Errorf("failed to set Subject: %w", err)
	}
	return nil
}

func (i *item) SaveAs(path string, format automation.SaveFormat) error {
	code, err := saveAsType(format)
	if err != nil {
		return err
	}

	if _, err := oleutil.CallMethod(i.disp, "SaveAs", path, code); err != nil {
		return fmt.Errorf("failed to save as %v: %w", format, err)
	}
	return nil
}

func (i *item) Close(discard bool) error {
	mode := olSave
	if discard {
		mode = olDiscard
	}

	if _, err := oleutil.CallMethod(i.disp, "Close", int32(mode)); err != nil {
		return fmt.Errorf("failed to close item: %w", err)
	}
	return nil
}
