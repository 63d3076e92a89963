package lifecycle

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/pasqal-io/onready/internal/hook"
)

// Options for building a driver.
type Options struct {
	// Human-readable information on what this driver readies,
	// e.g. the name of a scene.
	//
	// Used for logging. Optional.
	RootPath string

	// The logger. If you leave this nil, defaults to `Logger()`.
	Logger *zap.Logger
}

// A preset fit for readying the objects of a scene.
func SceneOptions(scene string) Options {
	return Options{
		RootPath: scene,
		Logger:   Logger(),
	}
}

// Runs the lifecycle callbacks of objects.
//
// Not safe for concurrent use: objects are expected to be readied from the
// engine's main thread.
type Driver struct {
	rootPath string
	logger   *zap.Logger
	token    hook.Token
}

func NewDriver(options Options) *Driver {
	logger := options.Logger
	if logger == nil {
		logger = Logger()
	}
	return &Driver{
		rootPath: options.RootPath,
		logger:   logger,
		token:    hook.Mint(),
	}
}

// Run the lifecycle of `obj` up to and including `Ready()`.
//
// `obj` must be a non-nil pointer to a struct. Call it at most once per
// object: deferred fields panic when initialized twice.
//
// Panics raised by hooks or initializers are logged and propagated.
func (d *Driver) Ready(obj any) error {
	ptr := reflect.ValueOf(obj)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("at %s, expected a non-nil pointer to a struct, got %T", d.path(), obj)
	}
	value := ptr.Elem()
	typeName := value.Type().String()

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("lifecycle callback panicked",
				zap.String("root", d.rootPath),
				zap.String("type", typeName),
				zap.Any("panic", r))
			panic(r)
		}
	}()

	if enterer, ok := obj.(TreeEnterer); ok {
		enterer.EnterTree()
	}

	for i, field := range planFor(value.Type()) {
		d.logger.Debug("triggering field",
			zap.String("root", d.rootPath),
			zap.String("type", typeName),
			zap.String("field", field.path),
			zap.Int("index", i))
		fieldPointer(value, field.index).TriggerAutoInit(d.token)
	}

	if readier, ok := obj.(Readier); ok {
		readier.Ready()
	}
	d.logger.Debug("object ready",
		zap.String("root", d.rootPath),
		zap.String("type", typeName))
	return nil
}

// Construct an object with `ctor`, then run its lifecycle.
func Spawn[T any](d *Driver, ctor func() *T) (*T, error) {
	obj := ctor()
	if obj == nil {
		return nil, fmt.Errorf("at %s, constructor of %s returned nil", d.path(), reflect.TypeFor[T]())
	}
	if err := d.Ready(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (d *Driver) path() string {
	if d.rootPath == "" {
		return "."
	}
	return d.rootPath
}

// A field that takes part in the automatic initialization pass.
type autoField struct {
	index []int
	// e.g. "Base.sprite" for a field of an embedded struct.
	path string
}

var (
	autoInitializerInterface = reflect.TypeOf((*hook.AutoInitializer)(nil)).Elem()
	plans                    sync.Map // map[reflect.Type][]autoField
)

func planFor(typ reflect.Type) []autoField {
	if cached, ok := plans.Load(typ); ok {
		return cached.([]autoField)
	}
	plan := collectAutoFields(typ, nil, nil, make([]autoField, 0))
	plans.Store(typ, plan)
	return plan
}

func collectAutoFields(typ reflect.Type, prefix []int, names []string, out []autoField) []autoField {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		index := append(append(make([]int, 0, len(prefix)+1), prefix...), i)
		path := append(append(make([]string, 0, len(names)+1), names...), field.Name)
		switch {
		case reflect.PointerTo(field.Type).Implements(autoInitializerInterface):
			out = append(out, autoField{
				index: index,
				path:  strings.Join(path, "."),
			})
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			out = collectAutoFields(field.Type, index, path, out)
		}
	}
	return out
}

// Deferred fields are usually private, so we cannot go through
// `Interface()`.
func fieldPointer(value reflect.Value, index []int) hook.AutoInitializer {
	field := value.FieldByIndex(index)
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Interface().(hook.AutoInitializer)
}
