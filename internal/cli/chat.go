package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/client"
	"github.com/hotgigs/careerassist/internal/model/profile"
	chatService "github.com/hotgigs/careerassist/internal/service/chat"
	"github.com/hotgigs/careerassist/internal/tui"
)

var (
	chatName       string
	chatRole       string
	chatThinkDelay int
	chatSeed       int64
	chatPlaybook   string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat with the career assistant",
	Long: `Start an interactive chat session in the terminal.

The transcript scrolls in a viewport, Enter sends the input box, Tab cycles
through the suggestion chips and Enter picks the focused chip into the input.
Ctrl+Y copies the latest assistant reply to the clipboard.

The --think-delay, --seed and --playbook flags only apply to the embedded
assistant; with --server the deployment's configuration wins.

Examples:
  careerassist chat --name Dana
  careerassist chat --name Rae --role recruiter
  careerassist chat --name Dana --think-delay 0 --playbook playbook.yaml
  careerassist chat --server http://assistant.internal:8080 --name Dana`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatName, "name", "Guest", "display name shown in the transcript")
	chatCmd.Flags().StringVar(&chatRole, "role", string(profile.RoleJobSeeker), "profile role: jobSeeker or recruiter")
	chatCmd.Flags().IntVar(&chatThinkDelay, "think-delay", int(chatService.DefaultThinkDelay/time.Millisecond),
		"simulated typing delay in milliseconds")
	chatCmd.Flags().Int64Var(&chatSeed, "seed", 0, "seed for the numeric reply fillers (0 uses the clock)")
	chatCmd.Flags().StringVar(&chatPlaybook, "playbook", "", "YAML playbook overriding rules and reply content")
}

func runChat(cmd *cobra.Command, args []string) error {
	role, err := profile.ParseRole(chatRole)
	if err != nil {
		return err
	}
	p := profile.Profile{DisplayName: chatName, Role: role}
	if err := p.Validate(); err != nil {
		return err
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}
	return tui.Run(engine, p)
}

// buildEngine picks the remote or embedded assistant depending on --server.
func buildEngine() (tui.Engine, error) {
	if serverURL != "" {
		return tui.NewRemoteEngine(client.New(serverURL)), nil
	}

	var opts []advisor.Option
	if chatSeed != 0 {
		opts = append(opts, advisor.WithSeed(chatSeed))
	}
	adv := advisor.New(opts...)

	if chatPlaybook != "" {
		playbook, err := advisor.LoadPlaybook(chatPlaybook)
		if err != nil {
			return nil, err
		}
		if err := adv.ApplyPlaybook(playbook); err != nil {
			return nil, fmt.Errorf("apply playbook: %w", err)
		}
	}

	svc := chatService.NewService(adv,
		chatService.WithThinkDelay(time.Duration(chatThinkDelay)*time.Millisecond))
	return tui.NewLocalEngine(svc), nil
}
