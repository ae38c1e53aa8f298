package internal

// env is the single flat namespace a run mutates. Values are stored by
// value, a read hands back a copy.
type env struct {
	state *interpreterState

	values map[string]interface{}
}

func newEnv(state *interpreterState) *env {
	return &env{
		state:  state,
		values: make(map[string]interface{}),
	}
}

func (e *env) get(name *token) interface{} {
	if value, ok := e.values[name.lexeme]; ok {
		return value
	}
	e.state.runtimeErr(errUndefinedVar, name)
	return nil
}

// define binds name unconditionally, overwriting any prior binding
func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}
