package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ElementsCSV is a small element dataset covering the first periods plus a
// few records with awkward values (blank atomic number, bracketed mass).
const ElementsCSV = `Symbol,Element,AtomicNumber,AtomicMass,Group,Period
H,Hydrogen,1,1.008,1,1
He,Helium,2,4.0026,18,1
Li,Lithium,3,6.94,1,2
Be,Beryllium,4,9.0122,2,2
Ne,Neon,10,20.180,18,2
Na,Sodium,11,22.990,1,3
K,Potassium,19,39.098,1,4
Og,Oganesson,,[294],18,7
`

// GroupsJSON is a group dataset matching ElementsCSV.
const GroupsJSON = `[
    {"cs": "Alkalické kovy", "en": "Alkali metals", "elements": ["Li", "Na", "K", "Rb", "Cs", "Fr"]},
    {"cs": "Vzácné plyny", "en": "Noble gases", "elements": ["He", "Ne", "Ar", "Kr", "Xe", "Rn", "Og"]},
    {"cs": "Kovy alkalických zemin", "en": "Alkaline earth metals", "elements": ["Be", "Mg", "Ca"]}
]`

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// WriteDataset writes ElementsCSV and GroupsJSON into a fresh temp directory
// and returns the directory and both file paths.
func WriteDataset(t testing.TB) (dir, elementsPath, groupsPath string) {
	t.Helper()
	dir = t.TempDir()
	elementsPath = WriteFile(t, dir, "elements.csv", ElementsCSV)
	groupsPath = WriteFile(t, dir, "groups.json", GroupsJSON)
	return dir, elementsPath, groupsPath
}
