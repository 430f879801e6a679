package view

// Environment is the inherited key/value store seen by a node. It is rebuilt on demand by
// applying every ancestor's mutator from the root down
type Environment map[any]any

// Key identifies an environment value of type T; keys compare by pointer
type Key[T any] struct {
	name string
	def  T
}

// NewKey creates a key with a default used when no ancestor sets it
func NewKey[T any](name string, def T) *Key[T] {
	return &Key[T]{name: name, def: def}
}

// Get returns the value in env or the default
func (k *Key[T]) Get(env Environment) T {
	if v, ok := env[k]; ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	return k.def
}

// Set stores v in env
func (k *Key[T]) Set(env Environment, v T) {
	env[k] = v
}

func (k *Key[T]) String() string {
	return k.name
}
