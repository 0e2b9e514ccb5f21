package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; lower values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // CLI command, whole directory build
	ScopePhase                   // lex, fixture read, build, cache
	ScopeFile                    // one input file
	ScopeNode                    // factory calls and fallbacks
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopePhase: "phase", ScopeFile: "file", ScopeNode: "node"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Attr is one key-value pair attached to a span end.
type Attr struct {
	Key   string
	Value string
}

// Event is a single trace record. Seq is stamped by the tracer that stores
// the event.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корневых спанов
	Lane     int    // рабочая дорожка BuildDir; 0 вне пула
	Name     string // e.g. "build-dir", "build a.tree", "fallback"
	Detail   string
	Attrs    []Attr
}

// Point emits an instant event when the tracer accepts the scope.
func Point(t Tracer, scope Scope, name, detail string) {
	if !accepts(t, scope) {
		return
	}
	t.Emit(&Event{Time: time.Now(), Kind: KindPoint, Scope: scope, Name: name, Detail: detail})
}

func accepts(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}
