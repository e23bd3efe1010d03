package nuspecmaker

import (
	"embed"
	"io/fs"
	"os"

	"github.com/arthur-debert/nuspecmaker/pkg/cobrax/topics"
	"github.com/arthur-debert/nuspecmaker/pkg/logging"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// TopicsFS returns the embedded help topics
func TopicsFS() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}

func topicRenderer() topics.Renderer {
	if os.Getenv("NO_COLOR") != "" || !stdoutIsTerminal() {
		return topics.NewPlainMarkdownRenderer()
	}
	return topics.NewGlamourRenderer()
}

func initTopics(rootCmd *cobra.Command) {
	_, err := topics.InitializeWithOptions(rootCmd, TopicsFS(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   topicRenderer(),
	})
	if err != nil {
		logger := logging.GetLogger("cmd.topics")
		logger.Warn().Err(err).Msg("Help topics unavailable")
	}
}
