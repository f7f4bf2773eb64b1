package schema

func object(name string, fields ...FieldDescriptor) Descriptor {
	return Descriptor{Name: name, Kind: KindObject, Fields: fields}
}

func field(name string, t *Descriptor) FieldDescriptor {
	return FieldDescriptor{Name: name, Type: t}
}

func ref(name string) *Descriptor {
	return &Descriptor{Name: name, Kind: KindObject}
}

func scalar(name string) *Descriptor {
	return &Descriptor{Name: name, Kind: KindScalar}
}

func nonNull(d *Descriptor) *Descriptor {
	return &Descriptor{Kind: KindNonNull, OfType: d}
}

func list(d *Descriptor) *Descriptor {
	return &Descriptor{Kind: KindList, OfType: d}
}
