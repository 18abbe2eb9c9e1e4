package catalog

func luaLanguage() Language {
	return Language{
		Name:   "lua",
		DocURL: "https://www.lua.org/manual/5.4/",
		Tip:    "Prefer local variables for better performance and safety.",
		Snippets: map[string]string{
			TopicHello: `print("Hello, world!")`,
			TopicFunction: `function add(a, b)
    return a + b
end`,
			TopicClass: `MyClass = {}
MyClass.__index = MyClass
function MyClass:new(value)
    local inst = setmetatable({}, self)
    inst.value = value
    return inst
end
function MyClass:toString()
    return "MyClass: " .. tostring(self.value)
end`,
		},
	}
}
