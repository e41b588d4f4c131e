package mathnorm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/riverfjs/mathnorm-go/internal/converter"
)

// PreprocessBatchContext 并发处理多个文本
//
// 每个文本独立处理，结果写入与输入相同下标的位置，因此顺序与输入一致。
// 并发上限由 WithWorkers 设置（默认 GOMAXPROCS）。ctx 取消后不再启动新的任务，
// 并返回包装后的 ctx 错误。
func PreprocessBatchContext(ctx context.Context, texts []string, opts ...Option) ([]string, error) {
	options := applyOptions(opts...)
	results := make([]string, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	workers := options.Config.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	started := time.Now()
	Logger.Debug().
		Int("items", len(texts)).
		Int("workers", workers).
		Msg("batch preprocessing started")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], _ = converter.Preprocess(text, options.Config)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("preprocess batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("preprocess batch: %w", err)
	}

	Logger.Debug().
		Int("items", len(texts)).
		Dur("elapsed", time.Since(started)).
		Msg("batch preprocessing finished")

	return results, nil
}
