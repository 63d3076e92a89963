package classdb

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// The document format: a list of classes, parents first.
//
//	classes:
//	  - name: Object
//	  - name: Node
//	    inherits: Object
type document struct {
	Classes []ClassInfo `yaml:"classes"`
}

// Register every class listed in a YAML document.
//
// Stops at the first invalid class; classes registered before it remain.
func (db *DB) LoadYAML(reader io.Reader) error {
	var doc document
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse class list:\n\t * %w", err)
	}
	for i, info := range doc.Classes {
		if err := db.Register(info); err != nil {
			return fmt.Errorf("at classes[%d]:\n\t * %w", i, err)
		}
	}
	return nil
}

// Build a DB from a YAML document.
func LoadYAML(reader io.Reader) (*DB, error) {
	db := New()
	if err := db.LoadYAML(reader); err != nil {
		return nil, err
	}
	return db, nil
}

//go:embed classes.yaml
var builtinClasses []byte

var (
	defaultDB   *DB
	defaultOnce sync.Once
)

// The engine's built-in class hierarchy.
//
// The result is shared: classes registered on it are visible to every user
// of `Default()`.
func Default() *DB {
	defaultOnce.Do(func() {
		db := New()
		if err := db.LoadYAML(bytes.NewReader(builtinClasses)); err != nil {
			panic(fmt.Errorf("embedded class list is invalid:\n\t * %w", err))
		}
		defaultDB = db
	})
	return defaultDB
}
