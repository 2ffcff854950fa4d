// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// FlexStrings is a JSON field that accepts either a single string or an
// array of strings. Shortcut clients (iOS Shortcuts, curl one-liners) send
// both shapes interchangeably, so every free-form list field uses this type.
type FlexStrings []string

// UnmarshalJSON accepts `"a"`, `["a","b"]`, and `null`.
// Non-string array members are coerced through their JSON representation.
func (f *FlexStrings) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*f = FlexStrings{single}
		return nil
	}

	var many []json.RawMessage
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}

	out := make(FlexStrings, 0, len(many))
	for _, raw := range many {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			s = string(raw)
		}
		out = append(out, s)
	}
	*f = out

	return nil
}

// MarshalJSON always emits the array form.
func (f FlexStrings) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(f))
}

// FlexCommand is the `cmd` field of POST /run: a single command string or an
// array of commands. Unlike FlexStrings it remembers which shape the client
// sent, because the array form always runs as a sequence, one-element arrays
// included, and the response shape follows the request shape.
type FlexCommand struct {
	// Values holds the command strings.
	Values []string

	// IsArray records that the client sent the array form.
	IsArray bool
}

// UnmarshalJSON accepts `"ls"`, `["ls"]`, `["ls","df"]`, and `null`.
func (f *FlexCommand) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = FlexCommand{}
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*f = FlexCommand{Values: []string{single}}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*f = FlexCommand{Values: many, IsArray: true}

	return nil
}

// MarshalJSON reproduces the submitted shape.
func (f FlexCommand) MarshalJSON() ([]byte, error) {
	if !f.IsArray && len(f.Values) == 1 {
		return json.Marshal(f.Values[0])
	}
	return json.Marshal(f.Values)
}
