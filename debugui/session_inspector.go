package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/termtris/tetris"
)

// SpawnRow is one line of the spawn distribution table.
type SpawnRow struct {
	Kind    tetris.Kind
	Count   int
	Percent float32
}

// SpawnRows returns the spawn count and share of every kind in definition order.
func SpawnRows(stats *tetris.Stats) []SpawnRow {
	total := stats.TotalSpawned()
	rows := make([]SpawnRow, 0, tetris.KindCount)
	for _, k := range tetris.Kinds() {
		row := SpawnRow{Kind: k, Count: stats.Spawned(k)}
		if total > 0 {
			row.Percent = float32(row.Count) * 100 / float32(total)
		}
		rows = append(rows, row)
	}
	return rows
}

// SessionInspector shows the live session state with a restart button once the game
// is over.
type SessionInspector struct {
	session *tetris.Session
}

func NewSessionInspector(session *tetris.Session) *SessionInspector {
	return &SessionInspector{session: session}
}

func pieceLabel(p tetris.Piece) string {
	return fmt.Sprintf("%s rot=%d at (%d, %d)", p.Kind, p.Rotation, p.X, p.Y)
}

func (si *SessionInspector) Render() {
	s := si.session

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 310), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if s.GameOver() {
		imgui.TextColored(imgui.NewVec4(1, 0.3, 0.3, 1), "GAME OVER")
		imgui.SameLine()
		if imgui.Button("Restart") {
			s.Restart()
		}
	} else {
		imgui.TextColored(imgui.NewVec4(0.4, 1, 0.4, 1), s.State().String())
	}

	imgui.Text(fmt.Sprintf("Score: %d", s.Score()))
	imgui.Text(fmt.Sprintf("Speed: %d ticks/row (min %d)", s.Speed(), s.Config().MinSpeed))
	imgui.Text(fmt.Sprintf("Frame: %d", s.Frame()))
	imgui.Separator()
	imgui.Text("Current: " + pieceLabel(s.Current()))
	imgui.Text("Next: " + s.Next().Kind.String())
	imgui.Text(fmt.Sprintf("Ghost row: %d", s.GhostY()))

	b := s.Board()
	imgui.Text(fmt.Sprintf("Board: %dx%d, %d cells filled", b.Width(), b.Height(), b.FilledCount()))

	stats := s.Stats()
	if imgui.TreeNodeStr("Spawns") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Share")
			imgui.TableHeadersRow()

			for _, row := range SpawnRows(stats) {
				c := row.Kind.Color()
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.TextColored(imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1), row.Kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.Count))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%.1f%%", row.Percent))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		imgui.Text(fmt.Sprintf("Locks: %d", stats.Locks()))
		imgui.Text(fmt.Sprintf("Lines: %d", stats.Lines()))
		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d rows: %d", rows, stats.Clears(rows)))
		}
		imgui.TreePop()
	}

	imgui.End()
}
