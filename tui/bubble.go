package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/clipdeck/clipdeck/color"
	"github.com/clipdeck/clipdeck/feed"
	"github.com/clipdeck/clipdeck/internal/ui"
	"github.com/clipdeck/clipdeck/key"
	"github.com/clipdeck/clipdeck/player"
	"github.com/clipdeck/clipdeck/upload"
	"github.com/clipdeck/clipdeck/util"
	"github.com/clipdeck/clipdeck/video"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// videoExtensions limits the file picker to formats the service is expected to accept.
var videoExtensions = []string{".mp4", ".mov", ".m4v", ".mkv", ".webm", ".avi", ".3gp"}

// upload form fields in focus order.
const (
	titleField = iota
	descriptionField
	fieldCount
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	spinnerC     spinner.Model
	videosC      list.Model
	pickerC      filepicker.Model
	titleC       textinput.Model
	descriptionC textarea.Model
	helpC        help.Model
	focused      int

	ctx     context.Context
	service Service
	options *Options

	feed *feed.Feed
	form *upload.Form
	// cancelFetch aborts the list request in flight.
	cancelFetch context.CancelFunc
	// cancelUpload aborts the upload in flight.
	cancelUpload context.CancelFunc

	selected  *video.Video
	playing   *video.Video
	player    player.Player
	newPlayer func(name string) (player.Player, error)
	progress chan float64
	watched  float64

	lastError error

	width, height int
	notifier      *ui.Notifier
	now           func() time.Time
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !b.state.transient() {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState pops the history. It reports false when there is nothing to go back to.
func (b *statefulBubble) previousState() bool {
	if b.statesHistory.Len() == 0 {
		return false
	}

	b.setState(b.statesHistory.Pop())
	return true
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.videosC.SetSize(listWidth, listHeight)
	b.videosC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y

	b.titleC.Width = b.width
	b.descriptionC.SetWidth(b.width)
	b.helpC.Width = listWidth
}

// shutdown stops anything still running when the program exits.
func (b *statefulBubble) shutdown() {
	if b.cancelFetch != nil {
		b.cancelFetch()
	}

	if b.cancelUpload != nil {
		b.cancelUpload()
	}

	if b.player != nil {
		_ = b.player.Close()
	}
}

func newBubble(ctx context.Context, service Service, options *Options) *statefulBubble {
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		ctx:           ctx,
		service:       service,
		options:       lo.Ternary(options != nil, options, &Options{}),
		feed:          feed.New(),
		form:          &upload.Form{},
		notifier:      &ui.Notifier{},
		now:           time.Now,
		newPlayer:     player.New,
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(color.Accent)

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	if viper.GetBool(key.TUIShowURLs) {
		delegate.SetHeight(3)
	}
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color.Accent).
		Foreground(color.Accent).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.videosC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.videosC.KeyMap = bubble.keymap.forList()
	bubble.videosC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
	bubble.videosC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return bubble.keymap.FullHelp()[0]
	}
	bubble.videosC.Title = videosTitle(0)
	bubble.videosC.Styles.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(color.Accent).Padding(0, 1)
	bubble.videosC.Styles.NoItems = paddingStyle
	bubble.videosC.SetStatusBarItemName("video", "videos")
	bubble.videosC.SetShowStatusBar(false)
	bubble.videosC.StatusMessageLifetime = NotificationLifetime

	bubble.titleC = textinput.New()
	bubble.titleC.Placeholder = "Title"
	bubble.titleC.Prompt = "Title: "
	bubble.titleC.CharLimit = video.MaxTitleLength

	bubble.descriptionC = textarea.New()
	bubble.descriptionC.Placeholder = "Description (optional)"
	bubble.descriptionC.CharLimit = video.MaxDescriptionLength
	bubble.descriptionC.ShowLineNumbers = false
	bubble.descriptionC.SetHeight(4)

	bubble.pickerC = filepicker.New()
	bubble.pickerC.AllowedTypes = videoExtensions
	if home, err := os.UserHomeDir(); err == nil {
		bubble.pickerC.CurrentDirectory = home
	}

	if bubble.options.Upload {
		bubble.setState(uploadState)
	} else {
		bubble.setState(loadingState)
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}

// NotificationLifetime matches the notifier so list status lines expire with it.
const NotificationLifetime = ui.NotificationTTL

func videosTitle(n int) string {
	return fmt.Sprintf("Videos (%d)", n)
}
