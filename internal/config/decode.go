package config

import (
	"math"
	"time"
)

// apply copies the recognised keys of data into c.
func (c *Config) apply(data map[string]any) error {
	d := decoder{data: data}

	d.floatVal("font", "charWidth", &c.Font.CharWidth)
	d.floatVal("font", "lineHeight", &c.Font.LineHeight)

	d.boolVal("view", "lineNumbers", &c.View.LineNumbers)
	d.stringVal("view", "lineNumberMode", &c.View.LineNumberMode)
	d.boolVal("view", "statusLine", &c.View.StatusLine)

	d.intVal("scroll", "margin", &c.Scroll.Margin)
	d.floatVal("scroll", "coalesceThreshold", &c.Scroll.CoalesceThreshold)

	d.durationVal("mouse", "doubleClickTime", &c.Mouse.DoubleClickTime)
	d.floatVal("mouse", "doubleClickDistance", &c.Mouse.DoubleClickDistance)
	d.intVal("mouse", "wheelRows", &c.Mouse.WheelRows)
	d.intVal("mouse", "wheelRowsShift", &c.Mouse.WheelRowsShift)
	d.boolVal("mouse", "dragSelection", &c.Mouse.DragSelection)

	d.stringVal("logging", "level", &c.Logging.Level)
	d.stringVal("logging", "file", &c.Logging.File)

	return d.err
}

// decoder reads typed values out of a loader map, keeping the first error.
type decoder struct {
	data map[string]any
	err  error
}

func (d *decoder) lookup(section, key string) (any, bool) {
	if d.err != nil {
		return nil, false
	}
	sec, ok := d.data[section].(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := sec[key]
	return v, ok
}

func (d *decoder) fail(section, key string, v any, reason string) {
	d.err = &ValueError{Key: section + "." + key, Value: v, Reason: reason}
}

func (d *decoder) floatVal(section, key string, dst *float64) {
	v, ok := d.lookup(section, key)
	if !ok {
		return
	}
	switch n := v.(type) {
	case float64:
		*dst = n
	case int64:
		*dst = float64(n)
	case int:
		*dst = float64(n)
	default:
		d.fail(section, key, v, "not a number")
	}
}

func (d *decoder) intVal(section, key string, dst *int) {
	v, ok := d.lookup(section, key)
	if !ok {
		return
	}
	switch n := v.(type) {
	case int64:
		*dst = int(n)
	case int:
		*dst = n
	case float64:
		if n != math.Trunc(n) {
			d.fail(section, key, v, "not an integer")
			return
		}
		*dst = int(n)
	default:
		d.fail(section, key, v, "not an integer")
	}
}

func (d *decoder) boolVal(section, key string, dst *bool) {
	v, ok := d.lookup(section, key)
	if !ok {
		return
	}
	b, isBool := v.(bool)
	if !isBool {
		d.fail(section, key, v, "not a boolean")
		return
	}
	*dst = b
}

func (d *decoder) stringVal(section, key string, dst *string) {
	v, ok := d.lookup(section, key)
	if !ok {
		return
	}
	s, isString := v.(string)
	if !isString {
		d.fail(section, key, v, "not a string")
		return
	}
	*dst = s
}

// duration accepts a Go duration string or a number of milliseconds.
func (d *decoder) durationVal(section, key string, dst *time.Duration) {
	v, ok := d.lookup(section, key)
	if !ok {
		return
	}
	switch t := v.(type) {
	case time.Duration:
		*dst = t
	case string:
		parsed, err := time.ParseDuration(t)
		if err != nil {
			d.fail(section, key, v, "not a duration")
			return
		}
		*dst = parsed
	case int64:
		*dst = time.Duration(t) * time.Millisecond
	case int:
		*dst = time.Duration(t) * time.Millisecond
	default:
		d.fail(section, key, v, "not a duration")
	}
}
