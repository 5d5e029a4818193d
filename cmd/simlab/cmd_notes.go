package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reillydonovan/aicivsim-sub000/internal/labnote"
	"github.com/reillydonovan/aicivsim-sub000/internal/logging"
	"github.com/reillydonovan/aicivsim-sub000/internal/storage"
)

// #region notes
func newNotesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage annotated lab notes",
		Long: `Save, list, restore and export lab notes.

Subcommands:
  list      - List saved notes, most recent first
  save      - Capture a scenario year as a note
  delete    - Delete a note
  restore   - Show where a note was taken
  export    - Export a note as Markdown
  history   - List stored revisions (sqlite backend)
  rollback  - Reactivate a stored revision (sqlite backend)
  log       - Show the note audit log (sqlite backend)`,
	}
	cmd.AddCommand(
		newNotesListCmd(a),
		newNotesSaveCmd(a),
		newNotesDeleteCmd(a),
		newNotesRestoreCmd(a),
		newNotesExportCmd(a),
		newNotesHistoryCmd(a),
		newNotesRollbackCmd(a),
		newNotesLogCmd(a),
	)
	return cmd
}

// withNotes opens the note store for the duration of fn.
func (a *app) withNotes(ctx context.Context, fn func(*labnote.Store, storage.Blob) error) error {
	notes, blob, closer := a.openNotes(ctx)
	defer closer.Close()
	if !notes.Enabled() {
		fmt.Fprintln(a.errOut, "lab notes are disabled: storage is unavailable")
	}
	return fn(notes, blob)
}

// findNote matches id exactly or as a unique prefix.
func findNote(notes *labnote.Store, id string) (labnote.Note, error) {
	if n, ok := notes.Get(id); ok {
		return n, nil
	}
	var matches []labnote.Note
	for _, n := range notes.List() {
		if strings.HasPrefix(n.ID, id) {
			matches = append(matches, n)
		}
	}
	switch len(matches) {
	case 0:
		return labnote.Note{}, fmt.Errorf("note %s not found", id)
	case 1:
		return matches[0], nil
	default:
		return labnote.Note{}, fmt.Errorf("note id %s is ambiguous (%d matches)", id, len(matches))
	}
}

// #endregion notes

// #region list
type noteRow struct {
	ID       string `json:"id"`
	Saved    string `json:"saved"`
	Scenario string `json:"scenario_id"`
	Year     int    `json:"year"`
	Score    int    `json:"composite_score"`
	Title    string `json:"title"`
}

func newNotesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved notes, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withNotes(cmd.Context(), func(notes *labnote.Store, _ storage.Blob) error {
				list := notes.List()
				if a.jsonOut {
					return printJSON(a.out, list)
				}
				if len(list) == 0 {
					fmt.Fprintln(a.out, "no lab notes saved")
					return nil
				}
				fmt.Fprintf(a.out, "%-8s  %-16s  %-12s  %4s  %5s  %s\n", "ID", "Saved", "Scenario", "Year", "Score", "Title")
				fmt.Fprintf(a.out, "%-8s+-%-16s+-%-12s+-%4s+-%5s+-%s\n", "--------", "----------------", "------------", "----", "-----", "--------------------")
				for _, n := range list {
					r := noteRow{
						ID:       shortID(n.ID),
						Saved:    n.Timestamp.UTC().Format("2006-01-02 15:04"),
						Scenario: n.ScenarioID,
						Year:     n.Year,
						Score:    n.CompositeScore,
						Title:    n.Title,
					}
					fmt.Fprintf(a.out, "%-8s  %-16s  %-12s  %4d  %5d  %s\n", r.ID, r.Saved, r.Scenario, r.Year, r.Score, truncate(r.Title, 48))
				}
				return nil
			})
		},
	}
}

// #endregion list

// #region save
func newNotesSaveCmd(a *app) *cobra.Command {
	var (
		year       int
		title      string
		annotation string
		against    string
	)
	cmd := &cobra.Command{
		Use:   "save <scenario>",
		Short: "Capture a scenario year as a lab note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, _, base, err := a.resolve(args[0], year)
			if err != nil {
				return err
			}
			idx, _ := yearIndex(sc, year)
			other, err := a.opposing(sc, against)
			if err != nil {
				return err
			}

			n, ok := labnote.Capture(labnote.CaptureInput{
				Scenario:   sc,
				YearIndex:  idx,
				Baseline:   base,
				Opposing:   other,
				Title:      title,
				Annotation: annotation,
			}, a.assembler)
			if !ok {
				return fmt.Errorf("nothing to capture for %s", sc.ID)
			}

			return a.withNotes(cmd.Context(), func(notes *labnote.Store, _ storage.Blob) error {
				saved := notes.Save(cmd.Context(), n)
				if a.jsonOut {
					return printJSON(a.out, saved)
				}
				if !notes.Enabled() {
					fmt.Fprintf(a.out, "not saved: %s\n", saved.Title)
					return nil
				}
				fmt.Fprintf(a.out, "saved %s: %s (%d/100, %s)\n", shortID(saved.ID), saved.Title, saved.CompositeScore, saved.Rating)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: last year of the trajectory)")
	cmd.Flags().StringVar(&title, "title", "", "note title (default: \"<scenario> — Year <year>\")")
	cmd.Flags().StringVarP(&annotation, "message", "m", "", "annotation text")
	cmd.Flags().StringVar(&against, "compare", "", "scenario to compare against in the report, or none")
	return cmd
}

// #endregion save

// #region delete-restore
func newNotesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a lab note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withNotes(cmd.Context(), func(notes *labnote.Store, _ storage.Blob) error {
				n, err := findNote(notes, args[0])
				if err != nil {
					return err
				}
				if !notes.Delete(cmd.Context(), n.ID) {
					return fmt.Errorf("note %s was not deleted", shortID(n.ID))
				}
				fmt.Fprintf(a.out, "deleted %s: %s\n", shortID(n.ID), n.Title)
				return nil
			})
		},
	}
}

type restoreOutput struct {
	labnote.RestorePoint
	Year  int    `json:"year"`
	Title string `json:"title"`
	Score int    `json:"current_score"`
}

func newNotesRestoreCmd(a *app) *cobra.Command {
	var showReport bool
	cmd := &cobra.Command{
		Use:   "restore <note-id>",
		Short: "Show the scenario and year a note was taken at",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withNotes(cmd.Context(), func(notes *labnote.Store, _ storage.Blob) error {
				n, err := findNote(notes, args[0])
				if err != nil {
					return err
				}
				rp, _ := notes.Restore(n.ID)

				out := restoreOutput{RestorePoint: rp, Year: n.Year, Title: n.Title, Score: -1}
				sc := a.data.Find(rp.ScenarioID)
				if b := a.scorer.Score(sc.At(rp.YearIndex), a.data.Baseline()); b != nil {
					out.Score = b.Total
				}
				if a.jsonOut {
					return printJSON(a.out, out)
				}

				fmt.Fprintf(a.out, "%s\n", n.Title)
				fmt.Fprintf(a.out, "Scenario:  %s\n", rp.ScenarioID)
				fmt.Fprintf(a.out, "Year:      %d (index %d)\n", n.Year, rp.YearIndex)
				fmt.Fprintf(a.out, "Saved:     %d/100 (%s)\n", n.CompositeScore, n.Rating)
				if out.Score < 0 {
					fmt.Fprintln(a.out, "Current:   not in the loaded dataset")
					return nil
				}
				fmt.Fprintf(a.out, "Current:   %d/100\n", out.Score)
				if showReport {
					return a.printReportAt(sc.ID, n.Year)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&showReport, "report", false, "regenerate the report from current data")
	return cmd
}

func (a *app) printReportAt(id string, year int) error {
	sc, snap, base, err := a.resolve(id, year)
	if err != nil {
		return err
	}
	in := labnote.CaptureInput{Scenario: sc, YearIndex: sc.IndexOfYear(snap.Year), Baseline: base}
	if other, err := a.opposing(sc, ""); err == nil {
		in.Opposing = other
	}
	n, ok := labnote.Capture(in, a.assembler)
	if !ok {
		return fmt.Errorf("no report for %s in %d", id, year)
	}
	fmt.Fprintln(a.out)
	return printMarkdown(a.out, n.Report, false)
}

// #endregion delete-restore

// #region export
func newNotesExportCmd(a *app) *cobra.Command {
	var (
		outPath string
		render  bool
	)
	cmd := &cobra.Command{
		Use:   "export <note-id>",
		Short: "Export a lab note as Markdown",
		Long: `Export a lab note as a Markdown document.

With --out pointing at a directory the file is named
snapshot-<scenario>-year<year>.md; otherwise --out is the file path.
Without --out the document is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withNotes(cmd.Context(), func(notes *labnote.Store, _ storage.Blob) error {
				n, err := findNote(notes, args[0])
				if err != nil {
					return err
				}
				doc := labnote.Export(n)

				if outPath == "" {
					return printMarkdown(a.out, doc.Body, render)
				}
				path := outPath
				if fi, err := os.Stat(outPath); err == nil && fi.IsDir() {
					path = filepath.Join(outPath, doc.Filename)
				}
				if err := os.WriteFile(path, []byte(doc.Body), 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(a.out, "wrote %s\n", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file or directory (default: stdout)")
	cmd.Flags().BoolVar(&render, "render", false, "render Markdown for the terminal when writing to stdout")
	return cmd
}

// #endregion export

// #region sqlite-history
var errNeedsSQLite = errors.New("requires the sqlite storage backend")

func sqliteBlob(blob storage.Blob) (*storage.SQLite, error) {
	db, ok := blob.(*storage.SQLite)
	if !ok {
		return nil, errNeedsSQLite
	}
	return db, nil
}

type versionRow struct {
	VersionID string `json:"version_id"`
	ParentID  string `json:"parent_id,omitempty"`
	Size      int    `json:"size"`
	CreatedAt string `json:"created_at"`
}

func newNotesHistoryCmd(a *app) *cobra.Command {
	var last int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored revisions of the note collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withNotes(cmd.Context(), func(_ *labnote.Store, blob storage.Blob) error {
				db, err := sqliteBlob(blob)
				if err != nil {
					return err
				}
				versions, err := db.ListVersions(cmd.Context(), a.cfg.NotesKey, last)
				if err != nil {
					return err
				}
				rows := make([]versionRow, len(versions))
				for i, v := range versions {
					rows[i] = versionRow{
						VersionID: v.VersionID,
						ParentID:  v.ParentID,
						Size:      v.Size,
						CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z"),
					}
				}
				if a.jsonOut {
					return printJSON(a.out, rows)
				}
				if len(rows) == 0 {
					fmt.Fprintln(a.out, "no versions found")
					return nil
				}
				fmt.Fprintf(a.out, "%-36s  %-8s  %8s  %s\n", "Version", "Parent", "Bytes", "Time")
				fmt.Fprintf(a.out, "%-36s+-%-8s+-%8s+-%s\n", strings.Repeat("-", 36), "--------", "--------", "--------------------")
				for _, r := range rows {
					parent := "—"
					if r.ParentID != "" {
						parent = shortID(r.ParentID)
					}
					fmt.Fprintf(a.out, "%-36s  %-8s  %8d  %s\n", r.VersionID, parent, r.Size, r.CreatedAt)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&last, "last", 20, "show N most recent versions")
	return cmd
}

func newNotesRollbackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rollback <version-id>",
		Short: "Reactivate a stored revision of the note collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withNotes(cmd.Context(), func(notes *labnote.Store, blob storage.Blob) error {
				db, err := sqliteBlob(blob)
				if err != nil {
					return err
				}
				ctx := cmd.Context()
				if err := db.Rollback(ctx, a.cfg.NotesKey, args[0]); err != nil {
					return err
				}
				notes.Reload(ctx)
				if err := db.Record(ctx, logging.ActionEntry{
					Action:    logging.ActionRollback,
					VersionID: args[0],
					Detail:    fmt.Sprintf("%d notes active", len(notes.List())),
				}); err != nil {
					a.log.Warn("audit rollback failed", zap.Error(err))
				}
				fmt.Fprintf(a.out, "rolled back to %s (%d notes)\n", shortID(args[0]), len(notes.List()))
				return nil
			})
		},
	}
}

type actionRow struct {
	Action     string `json:"action"`
	NoteID     string `json:"note_id,omitempty"`
	ScenarioID string `json:"scenario_id,omitempty"`
	Year       int    `json:"year,omitempty"`
	Score      int    `json:"score,omitempty"`
	VersionID  string `json:"version_id,omitempty"`
	Detail     string `json:"detail,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func newNotesLogCmd(a *app) *cobra.Command {
	var last int
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the lab note audit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withNotes(cmd.Context(), func(_ *labnote.Store, blob storage.Blob) error {
				db, err := sqliteBlob(blob)
				if err != nil {
					return err
				}
				entries, err := logging.RecentActions(cmd.Context(), db.DB(), last)
				if err != nil {
					return err
				}
				rows := make([]actionRow, len(entries))
				for i, e := range entries {
					rows[i] = actionRow{
						Action:     string(e.Action),
						NoteID:     e.NoteID,
						ScenarioID: e.ScenarioID,
						Year:       e.Year,
						Score:      e.Score,
						VersionID:  e.VersionID,
						Detail:     e.Detail,
						CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z"),
					}
				}
				if a.jsonOut {
					return printJSON(a.out, rows)
				}
				if len(rows) == 0 {
					fmt.Fprintln(a.out, "no actions recorded")
					return nil
				}
				fmt.Fprintf(a.out, "%-20s  %-8s  %-8s  %-12s  %4s  %s\n", "Time", "Action", "Note", "Scenario", "Year", "Detail")
				fmt.Fprintf(a.out, "%-20s+-%-8s+-%-8s+-%-12s+-%4s+-%s\n", "--------------------", "--------", "--------", "------------", "----", "--------------------")
				for _, r := range rows {
					fmt.Fprintf(a.out, "%-20s  %-8s  %-8s  %-12s  %4d  %s\n",
						r.CreatedAt, r.Action, shortID(r.NoteID), r.ScenarioID, r.Year, truncate(r.Detail, 40))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&last, "last", 20, "show N most recent actions")
	return cmd
}

// #endregion sqlite-history
