package catalog

// builtinLanguages returns every built-in language in listing order.
func builtinLanguages() []Language {
	return []Language{
		pythonLanguage(),
		javaLanguage(),
		perlLanguage(),
		luaLanguage(),
		kotlinLanguage(),
	}
}
