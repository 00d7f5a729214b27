package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/sathishrouthu/blog-cli/pkg/api"
	"github.com/sathishrouthu/blog-cli/pkg/client"
	"github.com/sathishrouthu/blog-cli/pkg/config"
	"github.com/sathishrouthu/blog-cli/pkg/output"
	"github.com/sathishrouthu/blog-cli/pkg/tracking"
)

const defaultPageLines = 18

// ReaderService runs the interactive reading session. While the user
// pages through a post it reports reading progress to the view
// recorder and lets them toggle the like state in place.
type ReaderService struct {
	in        io.Reader
	out       io.Writer
	pageLines int
}

// NewReaderService creates a reader bound to stdin and stdout
func NewReaderService() *ReaderService {
	return &ReaderService{in: os.Stdin, out: os.Stdout, pageLines: defaultPageLines}
}

// NewReaderServiceWithStreams creates a reader bound to the given
// streams, with pageLines lines of content per page.
func NewReaderServiceWithStreams(in io.Reader, out io.Writer, pageLines int) *ReaderService {
	if pageLines < 1 {
		pageLines = defaultPageLines
	}
	return &ReaderService{in: in, out: out, pageLines: pageLines}
}

// Read opens the post and runs the reading loop until the content is
// exhausted or the user quits.
func (s *ReaderService) Read(postID int64) error {
	client.Init()
	userID := currentUserID()

	post, err := api.GetPost(postID)
	if err != nil {
		output.PrintError("Failed to fetch post: %v", err)
		return err
	}

	cache := openSession()
	defer cache.Save()

	likeLine := newLikeLine(s.out)
	controller := tracking.NewLikeController(restAPI{}, cache, likeLine, consoleNotifier{}, postID, userID)
	recorder := tracking.NewViewRecorder(restAPI{}, cache, postID, userID)
	defer recorder.Close()

	if userID != 0 {
		controller.Init(post.Likes)
	} else {
		likeLine.SetCount(post.Likes)
	}

	dwell := time.Duration(config.GetInt("tracking.dwell_seconds")) * time.Second
	hold := time.Duration(config.GetInt("tracking.visibility_hold_ms")) * time.Millisecond
	recorder.Setup(dwell, hold)

	pages := paginate(post.Content, s.pageLines)

	title := color.New(color.Bold)
	title.Fprintf(s.out, "%s\n", post.Title)
	fmt.Fprintf(s.out, "by %s", post.AuthorUsername)
	if post.Category != "" {
		fmt.Fprintf(s.out, " in %s", post.Category)
	}
	fmt.Fprintf(s.out, "\n\n")

	shown := 0
	showPage := func() {
		fmt.Fprintln(s.out, pages[shown])
		shown++
		recorder.ReportVisibility(float64(shown) / float64(len(pages)))
	}

	showPage()
	likeLine.render()

	scanner := bufio.NewScanner(s.in)
	for {
		if shown < len(pages) {
			fmt.Fprintf(s.out, "\n-- page %d/%d -- [enter] next, l like, q quit > ", shown, len(pages))
		} else {
			fmt.Fprint(s.out, "\n-- end -- l like, q quit > ")
		}

		if !scanner.Scan() {
			break
		}

		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "l":
			if userID == 0 {
				output.PrintWarning("Log in to like posts")
				continue
			}
			controller.Toggle()
			likeLine.render()
		case "q":
			return scanner.Err()
		default:
			if shown >= len(pages) {
				return scanner.Err()
			}
			showPage()
			likeLine.render()
		}
	}

	return scanner.Err()
}

// paginate splits content into pages of at most lines lines each.
func paginate(content string, lines int) []string {
	all := strings.Split(content, "\n")

	var pages []string
	for start := 0; start < len(all); start += lines {
		end := start + lines
		if end > len(all) {
			end = len(all)
		}
		pages = append(pages, strings.Join(all[start:end], "\n"))
	}
	if len(pages) == 0 {
		pages = []string{""}
	}
	return pages
}

// likeLine renders the like state as a status line on the terminal.
type likeLine struct {
	out     io.Writer
	liked   bool
	count   int64
	enabled bool
}

func newLikeLine(out io.Writer) *likeLine {
	return &likeLine{out: out, enabled: true}
}

func (l *likeLine) SetLiked(liked bool)     { l.liked = liked }
func (l *likeLine) SetCount(count int64)    { l.count = count }
func (l *likeLine) SetEnabled(enabled bool) { l.enabled = enabled }

func (l *likeLine) render() {
	marker := "[ ] like"
	if l.liked {
		marker = "[x] liked"
	}
	fmt.Fprintf(l.out, "\n%s  %d likes\n", marker, l.count)
}
