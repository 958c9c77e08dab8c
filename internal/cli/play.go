package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordgrid/internal/model"
	"github.com/mcoot/wordgrid/internal/services/game"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local game read from standard input",
		Long: `Play a single-board game, one command per line on standard input.

Commands:
  draw                         fill the hand from the bag
  draw LETTERS                 add tiles to the hand (? is a blank)
  place ROW COL h|v LETTERS    play tiles on the empty cells from ROW,COL
  preview ROW COL h|v LETTERS  score a move without playing it
  board                        print the board
  hand                         print the hand
  quit                         end the game

Tiles in a move skip over cells that already hold a tile. Write ?E to play
a blank as E. The game ends at quit or end of input. Pass --seed to get
the same bag draws on every run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()

			if !app.DictionaryService.IsLoaded() {
				return model.ErrDictionaryNotLoaded
			}

			g, err := app.GameController.CreateGame(ctx, game.CreateOptions{
				Layout:       cfg.Layout,
				HandCapacity: cfg.HandSize,
			})
			if err != nil {
				return err
			}

			session := &playSession{
				ctx:        ctx,
				controller: app.GameController,
				gameID:     g.ID,
				out:        NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr()),
			}
			return session.run(cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&cfg.Layout, "layout", cfg.Layout, "Board layout: standard, plain (env: WORDGRID_LAYOUT)")
	cmd.Flags().IntVar(&cfg.HandSize, "hand-size", cfg.HandSize, "Tiles a hand can hold (env: WORDGRID_HAND_SIZE)")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for bag draws, 0 for random (env: WORDGRID_SEED)")

	return cmd
}

// playSession runs one game from a stream of commands
type playSession struct {
	ctx        context.Context
	controller game.ControllerInterface
	gameID     model.GameID
	out        *Output
}

func (p *playSession) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		done, err := p.handle(line)
		if err != nil {
			// Rejected moves are reported and play continues
			p.out.PrintError(err)
		}
		if done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	g, err := p.controller.FinishGame(p.ctx, p.gameID)
	if err != nil {
		return err
	}
	p.out.Print(GameSummary{
		ID:    string(g.ID),
		State: string(g.State),
		Turns: g.Turn,
		Score: g.Score,
	})
	return nil
}

// handle runs one command line and reports whether the game should end
func (p *playSession) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case "draw":
		return false, p.draw(args)
	case "place":
		return false, p.place(args)
	case "preview":
		return false, p.preview(args)
	case "board":
		return false, p.board()
	case "hand":
		return false, p.hand()
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}
}

func (p *playSession) draw(args []string) error {
	var g *model.Game
	var err error
	if tiles := parseDraw(args); tiles == nil {
		g, err = p.controller.RefillHand(p.ctx, p.gameID)
	} else {
		g, err = p.controller.DrawTiles(p.ctx, p.gameID, tiles)
	}
	if err != nil {
		return err
	}
	p.out.Print(newHandView(g))
	return nil
}

func (p *playSession) place(args []string) error {
	placement, err := p.placement(args)
	if err != nil {
		return err
	}
	record, err := p.controller.SubmitMove(p.ctx, p.gameID, placement)
	if err != nil {
		return err
	}
	g, err := p.controller.GetGame(p.ctx, p.gameID)
	if err != nil {
		return err
	}
	p.out.Print(MoveView{
		Committed: true,
		Turn:      record.Turn,
		Words:     newWordViews(record.Words),
		Bonus:     record.Bonus,
		Score:     record.Score,
		Total:     g.Score,
		Hand:      g.Hand.String(),
	})
	return nil
}

func (p *playSession) preview(args []string) error {
	placement, err := p.placement(args)
	if err != nil {
		return err
	}
	score, err := p.controller.PreviewMove(p.ctx, p.gameID, placement)
	if err != nil {
		return err
	}
	g, err := p.controller.GetGame(p.ctx, p.gameID)
	if err != nil {
		return err
	}
	p.out.Print(MoveView{
		Words: newWordViews(score.Words),
		Bonus: score.Bonus,
		Score: score.Total,
		Total: g.Score,
		Hand:  g.Hand.String(),
	})
	return nil
}

func (p *playSession) board() error {
	b, err := p.controller.GetBoard(p.ctx, p.gameID)
	if err != nil {
		return err
	}
	p.out.Print(newBoardView(b))
	return nil
}

func (p *playSession) hand() error {
	g, err := p.controller.GetGame(p.ctx, p.gameID)
	if err != nil {
		return err
	}
	p.out.Print(newHandView(g))
	return nil
}

func (p *playSession) placement(args []string) (model.Placement, error) {
	spec, err := parseMoveSpec(args)
	if err != nil {
		return nil, err
	}
	b, err := p.controller.GetBoard(p.ctx, p.gameID)
	if err != nil {
		return nil, err
	}
	return spec.placement(b), nil
}
