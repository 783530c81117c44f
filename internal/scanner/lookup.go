package scanner

import "github.com/duyhunghd6/pysig-cli/internal/types"

// FindFunctionByName returns the first function whose name matches, or nil.
func FindFunctionByName(name string, functions []types.Function) *types.Function {
	for i := range functions {
		if functions[i].Name == name {
			return &functions[i]
		}
	}
	return nil
}

// FindClassByName returns the first class whose name matches, or nil.
func FindClassByName(name string, classes []types.Class) *types.Class {
	for i := range classes {
		if classes[i].Name == name {
			return &classes[i]
		}
	}
	return nil
}

// FindClassesWithBase returns all classes that list baseName among their
// base classes, in their original order.
func FindClassesWithBase(baseName string, classes []types.Class) []types.Class {
	var matched []types.Class
	for _, c := range classes {
		for _, b := range c.BaseClasses {
			if b == baseName {
				matched = append(matched, c)
				break
			}
		}
	}
	return matched
}
