package verb

import "fmt"

var mapVerb = map[string]Verb{}

var (
	Set        = addVerb("SET", 2)
	Get        = addVerb("GET", 1)
	Unset      = addVerb("UNSET", 1)
	NumEqualTo = addVerb("NUMEQUALTO", 1)
	Begin      = addVerb("BEGIN", 0)
	Rollback   = addVerb("ROLLBACK", 0)
	Commit     = addVerb("COMMIT", 0)
	End        = addVerb("END", 0)
)

func addVerb(name string, args int) Verb {
	v := Verb{name: name, args: args}
	mapVerb[name] = v
	return v
}

type Verb struct {
	name string
	args int
}

func (v Verb) String() string {
	return v.name
}

func (v Verb) Args() int {
	return v.args
}

func (v Verb) Equal(other Verb) bool {
	return v.name == other.name
}

func Parse(token string) (Verb, error) {
	if v, ok := mapVerb[token]; ok {
		return v, nil
	}
	return Verb{}, fmt.Errorf("unknown verb %q", token)
}
