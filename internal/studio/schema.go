// Reflection-based column schema derivation for the view layer.

package studio

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"
)

// ColumnType classifies a column for form rendering.
type ColumnType string

const (
	ColumnTypeText   ColumnType = "text"
	ColumnTypeNumber ColumnType = "number"
	ColumnTypeBool   ColumnType = "bool"
	ColumnTypeJSONB  ColumnType = "jsonb"
)

// Column describes one field of a namespace's canonical record shape.
type Column struct {
	Name        string     `json:"name"`
	Type        ColumnType `json:"type"`
	Required    bool       `json:"required,omitempty"`
	Description string     `json:"description,omitempty"`
}

// Schemas returns the column schema for every namespace, keyed by namespace
// name. Computed once; the result must not be mutated.
var Schemas = sync.OnceValue(func() map[string][]Column {
	return map[string][]Column{
		NSProjects:    columnsFromType[Project](),
		NSAssets:      columnsFromType[Asset](),
		NSBuilds:      columnsFromType[Build](),
		NSTeamMembers: columnsFromType[TeamMember](),
		NSEvents:      columnsFromType[Event](),
		NSKPIs:        columnsFromType[KPI](),
		NSScenes:      columnsFromType[Scene](),
		NSShaders:     columnsFromType[Shader](),
		NSSnippets:    columnsFromType[Snippet](),
		NSPerfMetrics: columnsFromType[PerfMetric](),
	}
})

// columnsFromType extracts column definitions using JSON Schema reflection,
// pulling descriptions from `jsonschema:"description=..."` tags and the
// required set from the generated schema.
func columnsFromType[T any]() []Column {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("columnsFromType: %s is not a struct", t))
	}

	// Inline properties, no $ref indirection.
	r := jsonschema.Reflector{Anonymous: true, DoNotReference: true}
	schema := r.ReflectFromType(t)

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var columns []Column
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		colType := ColumnTypeText
		for i := range t.NumField() {
			field := t.Field(i)
			if jsonFieldName(&field) == name {
				colType = goTypeToColumnType(field.Type)
				break
			}
		}
		columns = append(columns, Column{
			Name:        name,
			Type:        colType,
			Required:    required[name],
			Description: pair.Value.Description,
		})
	}
	return columns
}

// jsonFieldName returns the JSON field name for a struct field.
func jsonFieldName(field *reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	for i, c := range tag {
		if c == ',' {
			if i == 0 {
				return field.Name
			}
			return tag[:i]
		}
	}
	return tag
}

// goTypeToColumnType maps Go types to column types.
func goTypeToColumnType(t reflect.Type) ColumnType {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() { //nolint:exhaustive // Other kinds default to text
	case reflect.String:
		return ColumnTypeText
	case reflect.Bool:
		return ColumnTypeBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return ColumnTypeNumber
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
		return ColumnTypeJSONB
	}
	return ColumnTypeText
}
