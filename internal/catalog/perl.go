package catalog

func perlLanguage() Language {
	return Language{
		Name:   "perl",
		DocURL: "https://perldoc.perl.org/",
		Tip:    "Use 'strict' and 'warnings' for safer Perl scripts.",
		Snippets: map[string]string{
			TopicHello: `print "Hello, world!\n";`,
			TopicFunction: `sub add {
    my ($a, $b) = @_;
    return $a + $b;
}`,
			TopicClass: `package MyClass;
sub new {
    my ($class, $value) = @_;
    bless { value => $value }, $class;
}
sub value {
    my $self = shift;
    return $self->{value};
}
1;`,
		},
	}
}
