/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package instancesmem

import (
	"fmt"

	"github.com/entiql/entiql/pkg/instances"
	"github.com/entiql/entiql/pkg/modeldef"
)

// instance is a map-backed IInstance
type instance struct {
	qname  modeldef.QName
	values map[string]interface{}
}

func (i *instance) QName() modeldef.QName { return i.qname }

func (i *instance) Value(name string) interface{} { return i.values[name] }

// # Implements:
//   - instances.ISource (per declaration, see Of)
//   - instances.IRefResolver
type Storage struct {
	model modeldef.IModel
	byQN  map[modeldef.QName][]*instance
	byRef map[instances.Ref]*instance
}

func (s *Storage) Add(qname modeldef.QName, values map[string]interface{}) error {
	d := s.model.DeclByName(qname)
	if d == nil {
		return fmt.Errorf("declaration «%v»: %w", qname, modeldef.ErrMissedError)
	}
	if d.Abstract() || !d.Kind().Instantiable() {
		return modeldef.ErrInvalid("can not store instances of %s «%v»", d.Kind().TrimString(), qname)
	}
	inst := &instance{qname: qname, values: values}

	id := ""
	idf := d.IdentifyingField()
	if idf != "" {
		v, ok := values[idf].(string)
		if !ok {
			return modeldef.ErrMissed("identifying field «%s» of «%v» instance", idf, qname)
		}
		id = v
	}

	// instances are enumerable and addressable through every declaration
	// of the inheritance chain
	for a := d; a != nil; a = a.Ancestor() {
		s.byQN[a.QName()] = append(s.byQN[a.QName()], inst)
		if idf != "" {
			s.byRef[instances.Ref{Type: a.QName(), ID: id}] = inst
		}
	}
	return nil
}

func (s *Storage) Resolve(ref instances.Ref) instances.IInstance {
	if inst, ok := s.byRef[ref]; ok {
		return inst
	}
	return nil
}

// Of returns a source enumerating stored instances of the specified
// declaration and its subtypes, in insertion order.
func (s *Storage) Of(qname modeldef.QName) instances.ISource {
	return &source{storage: s, qname: qname}
}

type source struct {
	storage *Storage
	qname   modeldef.QName
}

func (src *source) Instances(callback func(instances.IInstance) error) error {
	for _, inst := range src.storage.byQN[src.qname] {
		if err := callback(inst); err != nil {
			return err
		}
	}
	return nil
}

func (src *source) Resolve(ref instances.Ref) instances.IInstance {
	return src.storage.Resolve(ref)
}
