// Package material inventories the RPG Maker XP asset files a game and
// its RTP (runtime package) ship under Audio/ and Graphics/, and
// resolves, for each distinct (type, subtype, name), the single file a
// generated HTML browser should actually serve (spec §3.3, §4.5).
//
// Grounded on original_source/rpgxp/material.py in full: the fixed
// type/subtype catalogue, the priority/extension tie-break rule, and
// the copy operation are carried over unchanged; only the storage shape
// (an in-memory Inventory plus SQL text, rather than direct apsw calls)
// differs, mirroring rows' "accumulate, then render" split.
package material

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Types lists the two top-level asset categories, in seed order.
var Types = []string{"Audio", "Graphics"}

// Subtypes lists each type's fixed subtype catalogue, in seed order.
var Subtypes = map[string][]string{
	"Audio": {"BGM", "BGS", "ME", "SE"},
	"Graphics": {
		"Animations", "Autotiles", "Battlebacks", "Battlers", "Characters",
		"Fogs", "Gameovers", "Icons", "Panoramas", "Pictures", "Tilesets",
		"Titles", "Transitions", "Windowskins",
	},
}

// sourcePriority ranks where a file was found: a game-root file always
// shadows the same name found under the RTP.
var sourcePriority = map[string]int{
	"game": 0,
	"rtp":  -1,
}

// File is one material_file row: an actual file found for a material
// under one source root.
type File struct {
	Type      string
	Subtype   string
	Name      string
	Source    string
	Extension string
}

// Inventory accumulates the materials and files Scan finds across one
// or more source roots.
type Inventory struct {
	materials map[materialKey]bool
	order     []materialKey
	Files     []File
}

type materialKey struct{ Type, Subtype, Name string }

// NewInventory returns an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{materials: map[materialKey]bool{}}
}

// Scan walks <root>/<type>/<subtype>/ for every (type, subtype) pair in
// the fixed catalogue and records one Material (deduplicated across
// repeated Scan calls) and one File per file found, tagged with source.
// A missing subtype directory is not an error (original_source's
// material.py tolerates a game/rtp root that only ships some
// subtypes); rglob would simply find nothing.
func (inv *Inventory) Scan(root, source string) error {
	for _, typ := range Types {
		for _, subtype := range Subtypes[typ] {
			subtypeRoot := filepath.Join(root, typ, subtype)
			names, err := listFiles(subtypeRoot)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return fmt.Errorf("material: scanning %s: %w", subtypeRoot, err)
			}
			for _, rel := range names {
				ext := filepath.Ext(rel)
				name := filepath.ToSlash(strings.TrimSuffix(rel, ext))
				inv.addMaterial(typ, subtype, name)
				inv.Files = append(inv.Files, File{
					Type: typ, Subtype: subtype, Name: name,
					Source: source, Extension: ext,
				})
			}
		}
	}
	return nil
}

func (inv *Inventory) addMaterial(typ, subtype, name string) {
	k := materialKey{typ, subtype, name}
	if inv.materials[k] {
		return
	}
	inv.materials[k] = true
	inv.order = append(inv.order, k)
}

// listFiles returns every regular file under root, relative to root,
// in sorted order (spec's "stable, sorted filesystem iteration").
func listFiles(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// BestFile is one material_best_file row.
type BestFile struct {
	Type, Subtype, Name, Source, Extension string
}

// BestFiles resolves, for every material Scan found at least one file
// for, the single file with the highest source priority, tie-broken by
// lexicographically smallest extension (spec's Scenario: game/.mp3
// over game/.ogg over rtp/.wav).
func (inv *Inventory) BestFiles() []BestFile {
	bySlot := map[materialKey]File{}
	for _, f := range inv.Files {
		k := materialKey{f.Type, f.Subtype, f.Name}
		cur, ok := bySlot[k]
		if !ok || better(f, cur) {
			bySlot[k] = f
		}
	}
	best := make([]BestFile, 0, len(bySlot))
	for _, k := range inv.order {
		f, ok := bySlot[k]
		if !ok {
			continue
		}
		best = append(best, BestFile{
			Type: f.Type, Subtype: f.Subtype, Name: f.Name,
			Source: f.Source, Extension: f.Extension,
		})
	}
	return best
}

func better(candidate, current File) bool {
	cp, ap := sourcePriority[candidate.Source], sourcePriority[current.Source]
	if cp != ap {
		return cp > ap
	}
	return candidate.Extension < current.Extension
}

// CopyBestFiles copies every BestFiles selection into
// <siteRoot>/<type lowercase>/<subtype lowercase>/<name><extension>,
// reading the game-sourced files from gameRoot and the rtp-sourced
// files from rtpRoot (spec's "Copy operation").
func (inv *Inventory) CopyBestFiles(gameRoot, rtpRoot, siteRoot string) error {
	for _, bf := range inv.BestFiles() {
		srcRoot := gameRoot
		if bf.Source == "rtp" {
			srcRoot = rtpRoot
		}
		fullName := bf.Name + bf.Extension
		srcPath := filepath.Join(srcRoot, bf.Type, bf.Subtype, fullName)
		dstPath := filepath.Join(siteRoot, strings.ToLower(bf.Type), strings.ToLower(bf.Subtype), fullName)
		if err := copyFile(srcPath, dstPath); err != nil {
			return fmt.Errorf("material: copying %s: %w", srcPath, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}
