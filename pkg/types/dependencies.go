package types

import "sort"

// DependencyMap maps a target framework moniker to the packages it
// references, keyed by package id with the resolved version as value.
type DependencyMap map[string]map[string]string

// Frameworks returns the framework monikers in ordinal order
func (d DependencyMap) Frameworks() []string {
	frameworks := make([]string, 0, len(d))
	for fw := range d {
		frameworks = append(frameworks, fw)
	}
	sort.Strings(frameworks)
	return frameworks
}

// Packages returns the package ids of a framework in ordinal order
func (d DependencyMap) Packages(framework string) []string {
	pkgs := d[framework]
	ids := make([]string, 0, len(pkgs))
	for id := range pkgs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PackageCount returns the number of package references across all frameworks
func (d DependencyMap) PackageCount() int {
	count := 0
	for _, pkgs := range d {
		count += len(pkgs)
	}
	return count
}
