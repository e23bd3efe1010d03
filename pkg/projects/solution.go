package projects

import (
	"bufio"
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
)

// SolutionExtension is the extension of solution files
const SolutionExtension = ".sln"

// solutionFolderType is the project type GUID of virtual solution folders
const solutionFolderType = "2150E333-8FDC-42A3-9474-1A3956D46DE8"

// Project("{type}") = "Name", "relative\path\Name.csproj", "{guid}"
var projectLine = regexp.MustCompile(`^Project\("\{([^}]+)\}"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"`)

// FindSolution returns the solution file in root, or "" when there is
// none. More than one solution file is an error.
func FindSolution(fsys types.FS, root string) (string, error) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrProjectDiscovery, "cannot read solution root").
			WithDetail("path", root)
	}

	var found []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), SolutionExtension) {
			found = append(found, filepath.Join(root, entry.Name()))
		}
	}

	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		return "", errors.Newf(errors.ErrProjectDiscovery,
			"found %d solution files in %s, pick one with --sln", len(found), root).
			WithDetail("solutions", found)
	}
}

// FromSolution lists the projects of a solution file in file order.
// Solution folders and entries that are not project files are skipped.
func FromSolution(fsys types.FS, root, slnPath string) ([]types.Project, error) {
	logger := logging.GetLogger("projects.solution")

	if !filepath.IsAbs(slnPath) {
		slnPath = filepath.Join(root, slnPath)
	}

	data, err := fsys.ReadFile(slnPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProjectDiscovery, "cannot read solution file").
			WithDetail("path", slnPath)
	}

	slnDir := filepath.Dir(slnPath)
	var projects []types.Project

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		match := projectLine.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if match == nil {
			continue
		}
		typeGUID, name, relPath := match[1], match[2], match[3]

		if strings.EqualFold(typeGUID, solutionFolderType) || !isProjectFile(relPath) {
			logger.Trace().Str("name", name).Str("path", relPath).Msg("Skipping solution entry")
			continue
		}

		p := resolve(slnDir, name, relPath)
		if err := checkDir(fsys, p); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrProjectDiscovery, "cannot read solution file").
			WithDetail("path", slnPath)
	}

	return projects, nil
}
