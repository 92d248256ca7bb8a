package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// Table holds rows of already formatted cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table with headers.
func (t *Table) Render(w io.Writer) error {
	return t.write(w, true)
}

func (t *Table) write(w io.Writer, withHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	if withHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return nil
}

// TableFormatter formats arbitrary data as an aligned text table.
type TableFormatter struct {
	Wide      bool
	NoHeaders bool
}

// Format renders data as a table. Slices of structs become one row per
// element, single structs and maps become FIELD/VALUE listings, and a
// prebuilt Table renders as is. Anything else falls back to indented
// JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}

	if t, ok := data.(*Table); ok {
		return t.write(w, !f.NoHeaders)
	}
	if t, ok := data.(Table); ok {
		return t.write(w, !f.NoHeaders)
	}

	t, err := buildTable(data, f.Wide)
	if err != nil {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	return t.write(w, !f.NoHeaders)
}

func buildTable(data any, wide bool) (*Table, error) {
	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return tableFromSlice(v, wide)
	case reflect.Map:
		return tableFromMap(v)
	case reflect.Struct:
		return tableFromStruct(v)
	default:
		return nil, fmt.Errorf("no table form for %s", v.Kind())
	}
}

// tableFromSlice renders one row per element, with headers taken from
// the first element's fields.
func tableFromSlice(v reflect.Value, wide bool) (*Table, error) {
	if v.Len() == 0 {
		return &Table{}, nil
	}

	first := v.Index(0)
	if first.Kind() == reflect.Ptr {
		first = first.Elem()
	}

	t := &Table{}
	var fields []int

	switch first.Kind() {
	case reflect.Struct:
		structType := first.Type()
		for i := 0; i < structType.NumField(); i++ {
			field := structType.Field(i)
			if !field.IsExported() || !fieldVisible(field, wide) {
				continue
			}
			t.Headers = append(t.Headers, headerForField(field))
			fields = append(fields, i)
		}
	case reflect.Map:
		t.Headers = []string{"KEY", "VALUE"}
	default:
		t.Headers = []string{"VALUE"}
	}

	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}

		switch elem.Kind() {
		case reflect.Struct:
			row := make([]string, 0, len(fields))
			for _, idx := range fields {
				row = append(row, formatCell(elem.Field(idx)))
			}
			t.AddRow(row...)
		case reflect.Map:
			iter := elem.MapRange()
			for iter.Next() {
				t.AddRow(formatCell(iter.Key()), formatCell(iter.Value()))
			}
		default:
			t.AddRow(formatCell(elem))
		}
	}

	return t, nil
}

func tableFromMap(v reflect.Value) (*Table, error) {
	t := &Table{Headers: []string{"KEY", "VALUE"}}
	iter := v.MapRange()
	for iter.Next() {
		t.AddRow(formatCell(iter.Key()), formatCell(iter.Value()))
	}
	return t, nil
}

func tableFromStruct(v reflect.Value) (*Table, error) {
	t := &Table{Headers: []string{"FIELD", "VALUE"}}
	structType := v.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		t.AddRow(fieldName(field), formatCell(v.Field(i)))
	}
	return t, nil
}

// fieldVisible applies the table struct tag: "-" hides a field, "wide"
// shows it only in wide mode.
func fieldVisible(field reflect.StructField, wide bool) bool {
	tag := field.Tag.Get("table")
	if tag == "-" {
		return false
	}
	if strings.Contains(tag, "wide") && !wide {
		return false
	}
	return true
}

// fieldName prefers the json tag name so table and JSON output agree.
func fieldName(field reflect.StructField) string {
	if tag := field.Tag.Get("json"); tag != "" {
		name := strings.Split(tag, ",")[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

func headerForField(field reflect.StructField) string {
	return strings.ToUpper(toSnakeCase(fieldName(field)))
}

// formatCell renders a single value for a table cell. Empty strings
// and empty collections show as "-" so sparse columns stay readable.
func formatCell(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}

	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	if v.Type() == reflect.TypeOf(time.Time{}) {
		ts := v.Interface().(time.Time)
		if ts.IsZero() {
			return "-"
		}
		return ts.Format("2006-01-02 15:04")
	}

	switch v.Kind() {
	case reflect.String:
		if v.String() == "" {
			return "-"
		}
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		// Full precision matters for parameter values like alpha.
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return "-"
		}
		return fmt.Sprintf("[%d items]", v.Len())
	case reflect.Map:
		if v.Len() == 0 {
			return "-"
		}
		return fmt.Sprintf("{%d keys}", v.Len())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// toSnakeCase converts CamelCase to snake_case.
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return b.String()
}
