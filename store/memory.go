package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/models"

	"github.com/google/uuid"
	"gorm.io/gorm/schema"
)

// MemoryCollection keeps documents in process. Column names in filters and
// updates are resolved with the same naming rules GORM uses for tables.
type MemoryCollection[T any, P Doc[T]] struct {
	mu     sync.RWMutex
	docs   map[string]T
	order  []string
	schema *schema.Schema
	now    func() time.Time
}

// NewMemoryCollection creates an empty collection. now may be nil.
func NewMemoryCollection[T any, P Doc[T]](now func() time.Time) *MemoryCollection[T, P] {
	s, err := schema.Parse(new(T), &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		panic(fmt.Sprintf("store: parse schema of %T: %v", *new(T), err))
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryCollection[T, P]{
		docs:   make(map[string]T),
		schema: s,
		now:    now,
	}
}

// NewMemoryStore builds a Store with in-memory collections
func NewMemoryStore(now func() time.Time) *Store {
	return &Store{
		Users:    NewMemoryCollection[models.User](now),
		Hotels:   NewMemoryCollection[models.Hotel](now),
		Rooms:    NewMemoryCollection[models.Room](now),
		Bookings: NewMemoryCollection[models.Booking](now),
	}
}

func (c *MemoryCollection[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	doc = detach(doc)
	return &doc, nil
}

func (c *MemoryCollection[T, P]) FindWhere(ctx context.Context, filter Filter) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fields, err := c.lookup(keys(filter))
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range c.order {
		doc := c.docs[id]
		if c.matches(&doc, filter, fields) {
			out = append(out, detach(doc))
		}
	}
	return out, nil
}

func (c *MemoryCollection[T, P]) Insert(ctx context.Context, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := P(doc)

	c.mu.Lock()
	defer c.mu.Unlock()

	id := p.GetID()
	if id == "" {
		id = uuid.NewString()
	}
	if _, exists := c.docs[id]; exists {
		return fmt.Errorf("store: duplicate id %q in %s", id, c.schema.Table)
	}
	p.SetID(id)
	p.SetCreatedAt(c.now())
	c.docs[id] = detach(*doc)
	c.order = append(c.order, id)
	return nil
}

func (c *MemoryCollection[T, P]) UpdateFields(ctx context.Context, id string, fields Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	resolved, err := c.lookup(keys(fields))
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[id]
	if !ok {
		return ErrNotFound
	}
	rv := reflect.ValueOf(&doc).Elem()
	for column, value := range fields {
		if err := assign(rv.FieldByName(resolved[column]), value); err != nil {
			return fmt.Errorf("store: update %s.%s: %w", c.schema.Table, column, err)
		}
	}
	c.docs[id] = detach(doc)
	return nil
}

// lookup maps column names to Go field names
func (c *MemoryCollection[T, P]) lookup(columns []string) (map[string]string, error) {
	out := make(map[string]string, len(columns))
	for _, column := range columns {
		field := c.schema.LookUpField(column)
		if field == nil {
			return nil, fmt.Errorf("store: unknown column %q in %s", column, c.schema.Table)
		}
		out[column] = field.Name
	}
	return out, nil
}

func (c *MemoryCollection[T, P]) matches(doc *T, filter Filter, fields map[string]string) bool {
	rv := reflect.ValueOf(doc).Elem()
	for column, want := range filter {
		if !equal(rv.FieldByName(fields[column]), want) {
			return false
		}
	}
	return true
}

// detach copies the slice fields of doc so the stored and returned documents
// never share a backing array
func detach[T any](doc T) T {
	rv := reflect.ValueOf(&doc).Elem()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if field.Kind() != reflect.Slice || field.IsNil() || !field.CanSet() {
			continue
		}
		cp := reflect.MakeSlice(field.Type(), field.Len(), field.Len())
		reflect.Copy(cp, field)
		field.Set(cp)
	}
	return doc
}

func keys[M ~map[string]interface{}](m M) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func equal(field reflect.Value, want interface{}) bool {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return want == nil
		}
		field = field.Elem()
	}
	if want == nil {
		return false
	}
	wv := reflect.ValueOf(want)
	if wv.Kind() == reflect.Ptr {
		if wv.IsNil() {
			return false
		}
		wv = wv.Elem()
	}
	if ft, ok := field.Interface().(time.Time); ok {
		wt, ok := wv.Interface().(time.Time)
		return ok && ft.Equal(wt)
	}
	if wv.Type() != field.Type() {
		if !wv.Type().ConvertibleTo(field.Type()) {
			return false
		}
		wv = wv.Convert(field.Type())
	}
	return reflect.DeepEqual(field.Interface(), wv.Interface())
}

func assign(field reflect.Value, value interface{}) error {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}
	v := reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(field.Type()):
		field.Set(v)
	case field.Kind() == reflect.Ptr && v.Type().AssignableTo(field.Type().Elem()):
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(v)
		field.Set(ptr)
	case v.Kind() == reflect.Ptr && !v.IsNil() && v.Elem().Type().AssignableTo(field.Type()):
		field.Set(v.Elem())
	case v.Type().ConvertibleTo(field.Type()):
		field.Set(v.Convert(field.Type()))
	default:
		return fmt.Errorf("cannot assign %T to %s", value, field.Type())
	}
	return nil
}
