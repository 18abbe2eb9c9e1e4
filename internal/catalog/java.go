package catalog

func javaLanguage() Language {
	return Language{
		Name:   "java",
		DocURL: "https://docs.oracle.com/en/java/",
		Tip:    "Use try-with-resources for automatic resource management.",
		Snippets: map[string]string{
			TopicHello: `public class HelloWorld {
    public static void main(String[] args) {
        System.out.println("Hello, world!");
    }
}`,
			TopicFunction: `public int add(int a, int b) {
    return a + b;
}`,
			TopicClass: `public class MyClass {
    private int value;
    public MyClass(int value) {
        this.value = value;
    }
    public String toString() {
        return "MyClass: " + value;
    }
}`,
		},
	}
}
