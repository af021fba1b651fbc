package persist

// SerializeAll writes vs in argument order and stops at the first error.
// A composite's Serialize method is usually a single SerializeAll over its
// members.
func SerializeAll(ch Channel, vs ...any) error {
	for _, v := range vs {
		if err := Serialize(ch, v); err != nil {
			return err
		}
	}
	return nil
}

// DeserializeAll reads into vs in argument order and stops at the first error.
// The order must match the one used by SerializeAll.
func DeserializeAll(ch Channel, vs ...any) error {
	for _, v := range vs {
		if err := Deserialize(ch, v); err != nil {
			return err
		}
	}
	return nil
}
