package catalog

func kotlinLanguage() Language {
	return Language{
		Name:   "kotlin",
		DocURL: "https://kotlinlang.org/docs/home.html",
		Tip:    "Prefer val over var when possible.",
		Snippets: map[string]string{
			TopicHello: `fun main() {
    println("Hello, world!")
}`,
			TopicFunction: `fun add(a: Int, b: Int): Int {
    return a + b
}`,
			TopicClass: `class MyClass(val value: Int) {
    override fun toString(): String = "MyClass: $value"
}`,
		},
	}
}
