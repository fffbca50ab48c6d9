package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/iainktaylor/spotify-converter/internal/formatter"
	"github.com/iainktaylor/spotify-converter/internal/models"
	"github.com/iainktaylor/spotify-converter/internal/shared"
)

// ConvertOpts contains configuration for a conversion run.
type ConvertOpts struct {
	OutputDir  string           // Output directory (default: output)
	Format     formatter.Format // Output format
	IndexTitle string           // Index heading (default: formatter.DefaultIndexTitle)
	NumWorkers int              // Concurrent page writers (default: 4, max: 8)
}

// PageResult records the outcome of writing a single playlist page.
type PageResult struct {
	PlaylistName string
	Filename     string
	Path         string
	TrackCount   int
	Success      bool
	Error        error
}

// ConvertResult contains all data from a conversion run.
type ConvertResult struct {
	OutputDirectory string
	Format          formatter.Format
	IndexPath       string
	TotalPlaylists  int
	TotalTracks     int
	Pages           []PageResult // One per playlist, library order
	DuplicateNames  []string     // Sanitized names shared by more than one playlist
}

// DocEngine defines the conversion operation over a loaded library.
type DocEngine interface {
	// Convert renders and writes one document per playlist plus the index.
	Convert(ctx context.Context, prog chan<- ProgressUpdate, lib *models.Library, opts ConvertOpts) (*ConvertResult, error)
}

// ConvertEngine implements DocEngine against the local filesystem.
type ConvertEngine struct{}

// NewConvertEngine creates a new ConvertEngine.
func NewConvertEngine() *ConvertEngine {
	return &ConvertEngine{}
}

type pageJob struct {
	index int
	page  formatter.PageRef
}

type pageOutcome struct {
	index  int
	result PageResult
}

// Convert writes every playlist page and the index document for the library.
//
// Pages are written by a small worker pool; each page is independent and
// distinct file names never race. Pages with colliding sanitized names bypass
// the pool and are written sequentially in library order, so the later
// playlist always wins the file. The first page failure aborts the run with
// that error; pages already written stay on disk, there is no rollback.
func (e *ConvertEngine) Convert(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	lib *models.Library,
	opts ConvertOpts,
) (*ConvertResult, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrOutputDir, opts.OutputDir, err)
	}

	result := &ConvertResult{
		OutputDirectory: opts.OutputDir,
		Format:          opts.Format,
		TotalPlaylists:  lib.PlaylistCount(),
		TotalTracks:     lib.TotalTracks(),
		Pages:           make([]PageResult, len(lib.Playlists)),
	}

	ext := opts.Format.Extension()
	pages := make([]formatter.PageRef, len(lib.Playlists))
	counts := make(map[string]int, len(lib.Playlists))
	for i := range lib.Playlists {
		filename := formatter.SanitizeFilename(lib.Playlists[i].Name, ext)
		if counts[filename] > 0 {
			result.DuplicateNames = append(result.DuplicateNames, filename)
		}
		counts[filename]++
		pages[i] = formatter.PageRef{Playlist: &lib.Playlists[i], Filename: filename}
	}

	// Pages whose names collide are held out of the pool and written
	// sequentially afterwards, in library order, so the last playlist in the
	// library deterministically owns the file.
	var pooled, collided []pageJob
	for i, page := range pages {
		job := pageJob{index: i, page: page}
		if counts[page.Filename] > 1 {
			collided = append(collided, job)
		} else {
			pooled = append(pooled, job)
		}
	}

	e.sendProgress(prog, preparingOutputUpdate(opts.OutputDir, len(pages)))

	jobs := make(chan pageJob, len(pooled))
	outcomes := make(chan pageOutcome, len(pages))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.pageWorker(ctx, &wg, jobs, outcomes, opts)
	}

	go func() {
		for _, job := range pooled {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}
			jobs <- job
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	completed := 0
	for outcome := range outcomes {
		completed++
		result.Pages[outcome.index] = outcome.result

		if outcome.result.Success {
			e.sendProgress(prog, pageWrittenUpdate(
				completed,
				len(pages),
				outcome.result.Filename,
				outcome.result.TrackCount,
			))
		} else {
			e.sendProgress(prog, pageFailedUpdate(
				completed,
				len(pages),
				outcome.result.Filename,
				outcome.result.Error,
			))
		}
	}

	for _, job := range collided {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		completed++
		outcome := e.writePage(job.page, opts)
		result.Pages[job.index] = outcome

		if outcome.Success {
			e.sendProgress(prog, pageWrittenUpdate(completed, len(pages), outcome.Filename, outcome.TrackCount))
		} else {
			e.sendProgress(prog, pageFailedUpdate(completed, len(pages), outcome.Filename, outcome.Error))
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	for _, page := range result.Pages {
		if !page.Success && page.Error != nil {
			return result, fmt.Errorf("%w: %s: %v", shared.ErrWriteFile, page.Filename, page.Error)
		}
	}

	indexPath := filepath.Join(opts.OutputDir, opts.Format.IndexFilename())
	indexContent := formatter.RenderIndex(pages, opts.Format, opts.IndexTitle)
	if err := os.WriteFile(indexPath, []byte(indexContent), 0644); err != nil {
		return result, fmt.Errorf("%w: %s: %v", shared.ErrWriteFile, opts.Format.IndexFilename(), err)
	}
	result.IndexPath = indexPath

	e.sendProgress(prog, indexWrittenUpdate(opts.Format.IndexFilename()))

	return result, nil
}

// pageWorker renders and writes playlist pages from the jobs channel.
func (e *ConvertEngine) pageWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan pageJob,
	outcomes chan<- pageOutcome,
	opts ConvertOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcomes <- pageOutcome{index: job.index, result: e.writePage(job.page, opts)}
	}
}

// writePage renders a single playlist page and writes it to the output directory.
func (e *ConvertEngine) writePage(page formatter.PageRef, opts ConvertOpts) PageResult {
	result := PageResult{
		PlaylistName: page.Playlist.Name,
		Filename:     page.Filename,
		Path:         filepath.Join(opts.OutputDir, page.Filename),
		TrackCount:   page.Playlist.TrackCount(),
	}

	content := formatter.RenderPlaylist(page.Playlist, opts.Format)
	if err := os.WriteFile(result.Path, []byte(content), 0644); err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	return result
}

// sendProgress sends an update without blocking when the consumer lags.
func (e *ConvertEngine) sendProgress(prog chan<- ProgressUpdate, update ProgressUpdate) {
	if prog == nil {
		return
	}
	select {
	case prog <- update:
	default:
	}
}
