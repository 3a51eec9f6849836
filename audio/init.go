package audio

import (
	"fmt"
	"reflect"
)

// An Initer prepares itself to run at the given Params.
type Initer interface {
	InitAudio(Params)
}

type Params struct {
	SampleRate float64
}

func (p *Params) InitAudio(q Params) { *p = q }

// Init walks x through pointers, interfaces, exported struct fields, slices
// and arrays, calling InitAudio on every Initer it reaches.  Initers are not
// descended into.  A node reachable along several paths is initialised once,
// so graphs may share nodes.
func Init(x interface{}, p Params) {
	in := &initializer{p: p, seen: map[initKey]bool{}}
	if err := in.init(reflect.ValueOf(x)); err != nil {
		panic("audio.Init: " + err.Error())
	}
}

type initializer struct {
	p    Params
	seen map[initKey]bool
}

type initKey struct {
	ptr uintptr
	typ reflect.Type
}

var initerType = reflect.TypeOf(new(Initer)).Elem()

func (in *initializer) init(v reflect.Value) (err error) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() || !v.CanInterface() || v.Kind() == reflect.Ptr && v.IsNil() {
		return nil
	}
	if v.Kind() != reflect.Ptr && v.CanAddr() {
		v = v.Addr()
	}
	if v.Kind() == reflect.Ptr {
		k := initKey{v.Pointer(), v.Type()}
		if in.seen[k] {
			return nil
		}
		in.seen[k] = true
	}

	if x, ok := v.Interface().(Initer); ok {
		x.InitAudio(in.p)
		return nil
	}

	defer func() {
		if err != nil {
			// append v to the Init stack trace
			err = fmt.Errorf("%s\n\t%#v", err, v)
		}
	}()
	if t := v.Type(); t.Kind() != reflect.Ptr && reflect.PointerTo(t).Implements(initerType) {
		return fmt.Errorf("%s does not implement audio.Initer but *%s does.\nInit stack:", t, t)
	}

	v = reflect.Indirect(v)
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if err = in.init(v.Field(i)); err != nil {
				return
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err = in.init(v.Index(i)); err != nil {
				return
			}
		}
	}
	return nil
}
