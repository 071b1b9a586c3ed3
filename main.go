package main

import (
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sukechannnn/vsplit/config"
	"github.com/sukechannnn/vsplit/git"
	"github.com/sukechannnn/vsplit/ui"
	"github.com/sukechannnn/vsplit/util"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app := tview.NewApplication()

	// 上ペイン: 指定ファイル、なければ変更ファイル一覧
	topPanel, err := buildTopPanel(cfg)
	if err != nil {
		log.Fatalf("Failed to build top panel: %v", err)
	}

	// 下ペイン: コミットログ
	entries, err := git.GetCommitLog(cfg.RepoPath, cfg.LogLimit)
	if err != nil {
		log.Fatalf("Failed to get commit log: %v", err)
	}
	bottomPanel := ui.NewLogPanel(entries)

	statusView := ui.NewStatusView()

	resizableSplit := ui.NewResizableSplit(topPanel, bottomPanel, cfg.SplitOptions()...).
		SetDragFunc(func(dragging bool, ratio float64) {
			statusView.SetText(ui.FormatSplitStatus(dragging, ratio))
		}).
		SetChangedFunc(func(ratio float64) {
			statusView.SetText(ui.FormatSplitStatus(true, ratio))
		})
	resizableSplit.SetBackgroundColor(util.BackgroundColor.ToTcellColor())

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(resizableSplit, 0, 1, true).
		AddItem(statusView, 1, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape:
			resizableSplit.CancelDrag()
			return nil
		case event.Key() == tcell.KeyTab:
			if topPanel.HasFocus() {
				app.SetFocus(bottomPanel)
			} else {
				app.SetFocus(topPanel)
			}
			return nil
		case event.Rune() == 'q':
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(root, true).EnableMouse(true).Run(); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

func buildTopPanel(cfg *config.AppConfig) (*tview.TextView, error) {
	if cfg.FilePath != "" {
		content, err := util.ReadFileContent(cfg.FilePath, cfg.RepoPath)
		if err != nil {
			return nil, err
		}
		return ui.NewSourcePanel(cfg.FilePath, content), nil
	}

	modifiedFiles, untrackedFiles, err := git.GetChangedFiles(cfg.RepoPath)
	if err != nil {
		return nil, err
	}
	return ui.NewFilePanel("Changed Files", ui.FormatChangedFiles(modifiedFiles, untrackedFiles)), nil
}
