// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// Settings holds the shell's adjustable session state: the server
// endpoint and credential used by the send subcommand, whether send
// echoes its outgoing messages, and two values that are stored and
// displayed but not applied: StepBudget (reduction always uses the
// reducer's built-in step budget) and TimeoutSecs (the send client
// always uses a 30-second timeout). Every field name is independently
// reachable by an unambiguous prefix via settingsTree.
type Settings struct {
	ServerURL   string `doc:"contest communication endpoint"`
	AuthToken   string `doc:"bearer token sent with each request"`
	StepBudget  int    `doc:"reduction step budget (stored, not applied)"`
	ShowWire    bool   `doc:"echo the raw wire text of outgoing messages"`
	TimeoutSecs int    `doc:"HTTP request timeout in seconds (stored, not applied)"`
}

// NewSettings returns Settings populated with the same defaults the
// standalone CLI subcommands use when run without a shell session.
func NewSettings() *Settings {
	return &Settings{
		ServerURL:   "",
		AuthToken:   "",
		StepBudget:  0,
		ShowWire:    false,
		TimeoutSecs: 30,
	}
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	t := reflect.TypeOf(Settings{})
	settingsFields = make([]settingsField, t.NumField())
	for i := 0; i < len(settingsFields); i++ {
		f := t.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

// Display writes every setting and its current value to w, one per
// line, in declaration order.
func (s *Settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		var rendered string
		switch f.kind {
		case reflect.String:
			rendered = fmt.Sprintf("    %-12s %q", f.name, v.String())
		case reflect.Bool:
			rendered = fmt.Sprintf("    %-12s %v", f.name, v.Bool())
		default:
			rendered = fmt.Sprintf("    %-12s %v", f.name, v)
		}
		fmt.Fprintf(w, "%-30s (%s)\n", rendered, f.doc)
	}
}

// Kind reports the reflect.Kind of the named setting, or
// reflect.Invalid if key doesn't resolve to an unambiguous field.
func (s *Settings) Kind(key string) reflect.Kind {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return reflect.Invalid
	}
	return f.kind
}

// Set looks key up by unambiguous prefix and assigns value to it,
// converting value's type to the field's type when possible.
func (s *Settings) Set(key string, value any) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}

	vIn := reflect.ValueOf(value)
	if (f.kind == reflect.String && vIn.Kind() != reflect.String) ||
		(f.kind != reflect.String && vIn.Kind() == reflect.String) ||
		!vIn.Type().ConvertibleTo(f.typ) {
		return errors.New("shell: invalid type for setting " + f.name)
	}

	reflect.ValueOf(s).Elem().Field(f.index).Set(vIn.Convert(f.typ))
	return nil
}
