package engine

// registerStandardProperties installs the fallback rule for each documented
// property so lookups on entities that never set one explicitly get a
// sensible default instead of a no-applicable-method fault.
func registerStandardProperties(w *World) {
	boolDefault := func(name string, def bool) {
		w.Property(name).Prepend("default", nil, func(args []ID, next Next) (Value, error) {
			return Bool(def), nil
		})
	}
	strDefault := func(name string, def string) {
		w.Property(name).Prepend("default", nil, func(args []ID, next Next) (Value, error) {
			return Str(def), nil
		})
	}

	boolDefault("open", false)
	boolDefault("locked", false)
	boolDefault("on", false)
	boolDefault("worn", false)
	boolDefault("visited", false)
	boolDefault("known", false)
	boolDefault("opaque", false)
	boolDefault("transparent", false)
	boolDefault("fixed", false)
	boolDefault("reported", true)
	boolDefault("notable", true)
	boolDefault("scenery", false)
	boolDefault("makes_light", false)

	strDefault("pronoun", "it")
	strDefault("article", "a")
	strDefault("name", "")
	strDefault("description", "")
	strDefault("region", "")

	w.Property("words").Prepend("default", nil, func(args []ID, next Next) (Value, error) {
		return List(), nil
	})
}

// Pronoun/article convenience accessors used by the text sink and parser.
func (w *World) Name(o ID) string        { return w.Property("name").GetWorld(w, []ID{o}).Str() }
func (w *World) Description(o ID) string { return w.Property("description").GetWorld(w, []ID{o}).Str() }
func (w *World) Pronoun(o ID) string     { return w.Property("pronoun").GetWorld(w, []ID{o}).Str() }
func (w *World) Article(o ID) string     { return w.Property("article").GetWorld(w, []ID{o}).Str() }
func (w *World) IsOpen(o ID) bool        { return w.Property("open").GetWorld(w, []ID{o}).Bool() }
func (w *World) IsLocked(o ID) bool      { return w.Property("locked").GetWorld(w, []ID{o}).Bool() }
func (w *World) IsOn(o ID) bool          { return w.Property("on").GetWorld(w, []ID{o}).Bool() }
func (w *World) IsWorn(o ID) bool        { return w.Property("worn").GetWorld(w, []ID{o}).Bool() }
func (w *World) IsVisited(o, actor ID) bool {
	return w.Property("visited").GetWorld(w, []ID{o, actor}).Bool()
}
func (w *World) SetVisited(o, actor ID, v bool) {
	w.Property("visited").Set([]ID{o, actor}, Bool(v))
}
func (w *World) IsKnown(o, actor ID) bool {
	return w.Property("known").GetWorld(w, []ID{o, actor}).Bool()
}
func (w *World) IsOpaque(o ID) bool     { return w.Property("opaque").GetWorld(w, []ID{o}).Bool() }
func (w *World) IsTransparent(o ID) bool { return w.Property("transparent").GetWorld(w, []ID{o}).Bool() }
func (w *World) IsFixed(o ID) bool      { return w.Property("fixed").GetWorld(w, []ID{o}).Bool() }
func (w *World) IsReported(o ID) bool   { return w.Property("reported").GetWorld(w, []ID{o}).Bool() }
func (w *World) MakesLight(o ID) bool   { return w.Property("makes_light").GetWorld(w, []ID{o}).Bool() }
func (w *World) Region(o ID) ID { return ID(w.Property("region").GetWorld(w, []ID{o}).Str()) }
func (w *World) Words(o ID) []string {
	vals := w.Property("words").GetWorld(w, []ID{o}).List()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.Str()
	}
	return out
}
