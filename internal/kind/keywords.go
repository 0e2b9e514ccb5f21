package kind

var (
	keywords map[string]Kind
	puncts   map[string]Kind
)

func init() {
	keywords = make(map[string]Kind, 64)
	puncts = make(map[string]Kind, 64)
	for k := range kindCount {
		switch {
		case k.IsKeyword():
			keywords[k.Text()] = k
		case k.IsPunct():
			puncts[k.Text()] = k
		}
	}
}

// LookupKeyword возвращает kind ключевого слова, включая контекстные.
// Регистрозависимо: распознаются только lowercase формы.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupPunct maps fixed punctuation text to its kind.
func LookupPunct(text string) (Kind, bool) {
	k, ok := puncts[text]
	return k, ok
}
