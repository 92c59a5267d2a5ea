package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported field of a tile type.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
}

// ReflectionCache remembers the exported fields of each struct type it has
// seen.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{fieldCache: make(map[reflect.Type][]FieldInfo)}
}

// GetFields returns the exported fields of t, dereferencing a pointer type
// first. Non-struct types have none.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() || field.Anonymous {
				continue
			}
			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Pointer
			if isPointer {
				fieldType = fieldType.Elem()
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

// FieldValues returns name/value pairs for the exported fields of v, which
// may be a pointer to a struct.
func (rc *ReflectionCache) FieldValues(v any) [][2]string {
	val := reflect.ValueOf(v)
	if !val.IsValid() {
		return nil
	}
	fields := rc.GetFields(val.Type())
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	out := make([][2]string, 0, len(fields))
	for _, field := range fields {
		fv := val.Field(field.Index)
		if field.IsPointer {
			if fv.IsNil() {
				out = append(out, [2]string{field.Name, "nil"})
				continue
			}
			fv = fv.Elem()
		}
		out = append(out, [2]string{field.Name, formatValue(fv)})
	}
	return out
}

var globalReflectionCache = NewReflectionCache()
