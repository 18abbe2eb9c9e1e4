package catalog

func pythonLanguage() Language {
	return Language{
		Name:   "python",
		DocURL: "https://docs.python.org/3/",
		Tip:    "Consider using comprehensions for cleaner code.",
		Snippets: map[string]string{
			TopicHello: `print("Hello, world!")`,
			TopicFunction: `def my_function(arg1, arg2):
    """Example function."""
    return arg1 + arg2`,
			TopicClass: `class MyClass:
    def __init__(self, value):
        self.value = value
    def __str__(self):
        return f"MyClass: {self.value}"`,
		},
	}
}
