// Package phoneformat adapts github.com/nyaruka/phonenumbers to the total
// functions a keystroke-driven input needs. Every helper accepts arbitrary
// strings: parse failures fall back to the raw input (formatting) or false
// (validation) and are never returned to the caller.
package phoneformat
