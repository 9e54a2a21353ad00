package lambda

func NewNil() Value                  { return Value{kind: KindNil} }
func NewBool(b bool) Value           { return Value{kind: KindBool, data: b} }
func NewNumber(n float64) Value      { return Value{kind: KindNumber, data: n} }
func NewString(s string) Value       { return Value{kind: KindString, data: s} }
func NewList(l *List) Value          { return Value{kind: KindList, data: l} }
func NewFunction(f *Function) Value  { return Value{kind: KindFunction, data: f} }
func NewBuiltin(b *Builtin) Value    { return Value{kind: KindBuiltin, data: b} }
func NewClass(c *ClassDef) Value     { return Value{kind: KindClass, data: c} }
func NewInstance(i *Instance) Value  { return Value{kind: KindInstance, data: i} }
func NewHandle(h NativeHandle) Value { return Value{kind: KindHandle, data: h} }
