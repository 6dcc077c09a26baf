// Package portal implements the org.freedesktop.impl.portal.FileChooser
// backend: a session-bus object that translates portal option
// dictionaries into picker arguments, spawns the picker binary, and
// parses its stdout protocol into portal reply values.
package portal

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/FrogSnot/HardBore/internal/logs"
	"github.com/FrogSnot/HardBore/internal/picker"
)

const (
	busName    = "org.freedesktop.impl.portal.desktop.hardbore"
	objectPath = "/org/freedesktop/portal/desktop"
	ifaceName  = "org.freedesktop.impl.portal.FileChooser"
)

// Response codes returned as the first element of every method's reply.
const (
	ResponseSuccess   = uint32(0)
	ResponseCancelled = uint32(1)
	ResponseOther     = uint32(2)
)

// Service is the exported D-Bus object implementing FileChooser v3.
type Service struct {
	hardborePath string
}

// NewService resolves the picker binary once at construction.
func NewService() *Service {
	return &Service{hardborePath: resolveHardborePath()}
}

// Serve registers the well-known bus name and exports Service at
// objectPath, then blocks until ctx is done or the connection fails.
func Serve(ctx context.Context) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	svc := NewService()

	if err := conn.Export(svc, objectPath, ifaceName); err != nil {
		return err
	}
	if err := conn.Export(introspect.Introspectable(introspectXML), objectPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		return err
	}

	reply, err := conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return err
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		logs.Critical(ctx, "portal: bus name already owned", "name", busName)
		return fmt.Errorf("portal: failed to acquire bus name %q (reply=%v)", busName, reply)
	}

	logs.Notice(ctx, "portal: registered", "name", busName, "path", objectPath, "hardbore", svc.hardborePath)

	<-ctx.Done()
	return nil
}

// OpenFile implements the FileChooser.OpenFile method.
func (s *Service) OpenFile(handle dbus.ObjectPath, appID, parentWindow, title string, options map[string]dbus.Variant) (uint32, map[string]dbus.Variant, *dbus.Error) {
	directory := decodeBoolOption(options, "directory")
	multiple := decodeBoolOption(options, "multiple")
	startDir, _ := decodeStringOption(options, "current_folder")
	extensions := extensionsFromFilters(decodeFilters(options))

	mode := picker.Files
	if directory {
		mode = picker.Directories
	}

	args := pickerArgs(mode, multiple, extensions, startDir, "")
	selected := launchPicker(context.Background(), s.hardborePath, args)

	code, results := replyFromPaths(selected)
	return code, results, nil
}

// SaveFile implements the FileChooser.SaveFile method.
func (s *Service) SaveFile(handle dbus.ObjectPath, appID, parentWindow, title string, options map[string]dbus.Variant) (uint32, map[string]dbus.Variant, *dbus.Error) {
	startDir, _ := decodeStringOption(options, "current_folder")
	currentName, _ := decodeStringOption(options, "current_name")

	args := pickerArgs(picker.Save, false, nil, startDir, currentName)
	selected := launchPicker(context.Background(), s.hardborePath, args)

	code, results := replyFromPaths(selected)
	return code, results, nil
}

// SaveFiles implements the FileChooser.SaveFiles method: a directory
// picker plus a pre-chosen list of file names to place inside it.
func (s *Service) SaveFiles(handle dbus.ObjectPath, appID, parentWindow, title string, options map[string]dbus.Variant) (uint32, map[string]dbus.Variant, *dbus.Error) {
	startDir, _ := decodeStringOption(options, "current_folder")
	names := decodeStringList(options, "files")

	args := pickerArgs(picker.Directories, false, nil, startDir, "")
	selected := launchPicker(context.Background(), s.hardborePath, args)

	if len(selected) == 0 {
		return ResponseCancelled, map[string]dbus.Variant{}, nil
	}
	chosenDir := selected[0]

	var uris []string
	if len(names) == 0 {
		uris = []string{ToFileURI(chosenDir)}
	} else {
		for _, n := range names {
			uris = append(uris, ToFileURI(chosenDir+"/"+n))
		}
	}

	return ResponseSuccess, map[string]dbus.Variant{"uris": dbus.MakeVariant(uris)}, nil
}

// replyFromPaths builds the (response_code, results) pair for OpenFile and
// SaveFile: empty selection maps to cancelled, otherwise uris carries the
// percent-encoded file:// form of each path.
func replyFromPaths(paths []string) (uint32, map[string]dbus.Variant) {
	if len(paths) == 0 {
		return ResponseCancelled, map[string]dbus.Variant{}
	}
	uris := make([]string, len(paths))
	for i, p := range paths {
		uris[i] = ToFileURI(p)
	}
	return ResponseSuccess, map[string]dbus.Variant{"uris": dbus.MakeVariant(uris)}
}

func decodeStringList(options map[string]dbus.Variant, key string) []string {
	v, ok := options[key]
	if !ok {
		return nil
	}
	ss, _ := v.Value().([]string)
	return ss
}

const introspectXML = `
<node>
	<interface name="org.freedesktop.impl.portal.FileChooser">
		<method name="OpenFile">
			<arg type="o" name="handle" direction="in"/>
			<arg type="s" name="app_id" direction="in"/>
			<arg type="s" name="parent_window" direction="in"/>
			<arg type="s" name="title" direction="in"/>
			<arg type="a{sv}" name="options" direction="in"/>
			<arg type="u" name="response" direction="out"/>
			<arg type="a{sv}" name="results" direction="out"/>
		</method>
		<method name="SaveFile">
			<arg type="o" name="handle" direction="in"/>
			<arg type="s" name="app_id" direction="in"/>
			<arg type="s" name="parent_window" direction="in"/>
			<arg type="s" name="title" direction="in"/>
			<arg type="a{sv}" name="options" direction="in"/>
			<arg type="u" name="response" direction="out"/>
			<arg type="a{sv}" name="results" direction="out"/>
		</method>
		<method name="SaveFiles">
			<arg type="o" name="handle" direction="in"/>
			<arg type="s" name="app_id" direction="in"/>
			<arg type="s" name="parent_window" direction="in"/>
			<arg type="s" name="title" direction="in"/>
			<arg type="a{sv}" name="options" direction="in"/>
			<arg type="u" name="response" direction="out"/>
			<arg type="a{sv}" name="results" direction="out"/>
		</method>
	</interface>
</node>`
