package testutil

import (
	"encoding/json"
)

// Skeleton is a manifest as the packaging tool writes it
const Skeleton = `<?xml version="1.0"?>
<package >
  <metadata>
    <id>$id$</id>
    <version>$version$</version>
    <title>$title$</title>
    <authors>$author$</authors>
    <owners>$author$</owners>
    <licenseUrl>http://LICENSE_URL_HERE_OR_DELETE_THIS_LINE</licenseUrl>
    <projectUrl>http://PROJECT_URL_HERE_OR_DELETE_THIS_LINE</projectUrl>
    <iconUrl>http://ICON_URL_HERE_OR_DELETE_THIS_LINE</iconUrl>
    <requireLicenseAcceptance>false</requireLicenseAcceptance>
    <description>$description$</description>
    <releaseNotes>Summary of changes made in this release of the package.</releaseNotes>
    <copyright>Copyright 2018</copyright>
    <tags>Tag1 Tag2</tags>
  </metadata>
</package>
`

// LockFile renders a lock file declaring the given packages per framework,
// each as a minimum-only range
func LockFile(frameworks map[string]map[string]string) string {
	type dep struct {
		Target  string `json:"target"`
		Version string `json:"version"`
	}
	type fw struct {
		Dependencies map[string]dep `json:"dependencies"`
	}

	fws := make(map[string]fw, len(frameworks))
	for name, pkgs := range frameworks {
		deps := make(map[string]dep, len(pkgs))
		for id, version := range pkgs {
			deps[id] = dep{Target: "Package", Version: "[" + version + ", )"}
		}
		fws[name] = fw{Dependencies: deps}
	}

	doc := map[string]interface{}{
		"version": 3,
		"project": map[string]interface{}{
			"frameworks": fws,
		},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(data)
}

// ConfigFile renders a nuspec.config
func ConfigFile(nuget string, global map[string]string, ignore ...string) string {
	if global == nil {
		global = map[string]string{}
	}
	if ignore == nil {
		ignore = []string{}
	}
	data, err := json.MarshalIndent(map[string]interface{}{
		"Nuget":  nuget,
		"Global": global,
		"Ignore": ignore,
	}, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(data)
}
