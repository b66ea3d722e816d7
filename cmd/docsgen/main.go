package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/appengine-ltd/idlecraft/internal/config"
	"github.com/appengine-ltd/idlecraft/internal/game"
	"github.com/appengine-ltd/idlecraft/internal/gamedata"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	var (
		out     string
		envFile string
	)
	flag.StringVar(&out, "out", filepath.Join("docs", "reference", "catalogs"), "output directory")
	flag.StringVar(&envFile, "env", config.DefaultEnvFile, "optional .env file naming data overrides")
	flag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		fatal(err)
	}
	bundle, err := gamedata.Load(cfg.Data)
	if err != nil {
		fatal(err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		fatal(err)
	}

	files := generateDocs(bundle)
	files = append(files, generateCatalogIndex(files))
	for _, f := range files {
		path := filepath.Join(out, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}
}

func generateDocs(b *gamedata.Bundle) []docFile {
	return []docFile{
		generateItemsDoc(b.Items),
		generateQuestsDoc(b.Quests, b.Items),
		generateActivitiesDoc(b.Activities, b.Items),
		generateLevelCurveDoc(b.LevelCurve),
	}
}

func generateCatalogIndex(files []docFile) docFile {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the loaded game data using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return docFile{Name: "README.md", Title: "Data Catalogs", Content: b.String()}
}

func generateItemsDoc(items game.ItemDatabase) docFile {
	var b strings.Builder
	b.WriteString("# Items\n\n")
	b.WriteString("Source: `data/items.json`.\n\n")
	b.WriteString(fmt.Sprintf("Total items: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Description |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, id := range items.IDs() {
		it := items[id]
		b.WriteString(fmt.Sprintf("| %d | %s | %s |\n", it.ID, escape(it.Name), escape(it.Description)))
	}
	return docFile{Name: "items.md", Title: "Items", Content: b.String()}
}

func generateQuestsDoc(quests game.QuestDatabase, items game.ItemDatabase) docFile {
	var b strings.Builder
	b.WriteString("# Quests\n\n")
	b.WriteString("Source: `data/quests.json`.\n\n")
	b.WriteString(fmt.Sprintf("Total quests: **%d**.\n\n", len(quests)))
	b.WriteString("| ID | Name | Goal | Reward | Description |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, id := range quests.IDs() {
		q := quests[id]
		b.WriteString("| ")
		b.WriteString(fmt.Sprintf("%d", q.ID))
		b.WriteString(" | ")
		b.WriteString(escape(q.Name))
		b.WriteString(" | ")
		b.WriteString(escape(formatGoal(q.Goal, items)))
		b.WriteString(" | ")
		b.WriteString(escape(formatReward(q.Reward, items)))
		b.WriteString(" | ")
		b.WriteString(escape(q.Description))
		b.WriteString(" |\n")
	}
	return docFile{Name: "quests.md", Title: "Quests", Content: b.String()}
}

func generateActivitiesDoc(activities game.ActivityCatalog, items game.ItemDatabase) docFile {
	var b strings.Builder
	b.WriteString("# Activities\n\n")
	b.WriteString("Source: `data/balance.yaml` (`activities`).\n\n")
	b.WriteString("Rewards are granted once per completed cycle.\n\n")
	b.WriteString("| Activity | Cycle | Experience | Items |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, kind := range activities.Kinds() {
		def := activities[kind]
		xp := make([]string, 0, len(def.Experience))
		for _, e := range def.Experience {
			xp = append(xp, fmt.Sprintf("%d %s", e.Amount, e.Job))
		}
		b.WriteString("| ")
		b.WriteString(escape(string(def.Kind)))
		b.WriteString(" | ")
		b.WriteString(def.Duration.String())
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(xp, ", ")))
		b.WriteString(" | ")
		b.WriteString(escape(formatItems(def.Items, items)))
		b.WriteString(" |\n")
	}
	return docFile{Name: "activities.md", Title: "Activities", Content: b.String()}
}

func generateLevelCurveDoc(curve []uint64) docFile {
	var b strings.Builder
	b.WriteString("# Level Curve\n\n")
	b.WriteString("Experience needed to leave each level. Experience resets to zero on level up.\n\n")
	b.WriteString(fmt.Sprintf("Maximum level: **%d**.\n\n", len(curve)+1))
	b.WriteString("| Level | Experience to next |\n")
	b.WriteString("| --- | --- |\n")
	for i, xp := range curve {
		b.WriteString(fmt.Sprintf("| %d | %d |\n", i+1, xp))
	}
	return docFile{Name: "level_curve.md", Title: "Level Curve", Content: b.String()}
}

func formatGoal(g game.Goal, items game.ItemDatabase) string {
	switch g.Objective.Kind {
	case game.ObjectiveCollectItem:
		return fmt.Sprintf("Collect %d %s", g.RequiredAmount, items.Name(g.Objective.ItemID))
	case game.ObjectiveCollectGold:
		return fmt.Sprintf("Hold %d gold", g.RequiredAmount)
	case game.ObjectiveReachJobLevel:
		return fmt.Sprintf("%s level %d", g.Objective.Job, g.RequiredAmount)
	case game.ObjectiveReachLevel:
		return fmt.Sprintf("Player level %d", g.RequiredAmount)
	default:
		return string(g.Objective.Kind)
	}
}

func formatReward(r game.Reward, items game.ItemDatabase) string {
	parts := make([]string, 0, 3)
	if r.Experience != nil {
		parts = append(parts, fmt.Sprintf("%d %s xp", r.Experience.Amount, r.Experience.Job))
	}
	if s := formatItems(r.Items, items); s != "" {
		parts = append(parts, s)
	}
	if r.Gold > 0 {
		parts = append(parts, fmt.Sprintf("%d gold", r.Gold))
	}
	return strings.Join(parts, ", ")
}

func formatItems(stacks []game.Item, items game.ItemDatabase) string {
	parts := make([]string, 0, len(stacks))
	for _, it := range stacks {
		parts = append(parts, fmt.Sprintf("%d %s", it.Quantity, items.Name(it.ID)))
	}
	return strings.Join(parts, ", ")
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
