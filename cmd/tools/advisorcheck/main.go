// Command advisorcheck resolves utterances against the advisor from the
// command line, for smoke-checking rule and playbook changes without
// starting a server.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hotgigs/careerassist/internal/advisor"
	"github.com/hotgigs/careerassist/internal/model/profile"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	roleFlag := flag.String("role", string(profile.RoleJobSeeker), "profile role: jobSeeker or recruiter")
	text := flag.String("text", "", "single utterance to resolve (default reads lines from stdin)")
	seed := flag.Int64("seed", 0, "seed for the numeric fillers (0 uses the clock)")
	playbookPath := flag.String("playbook", "", "YAML playbook overriding rules and reply content")
	welcome := flag.Bool("welcome", false, "print the welcome message for the role first")
	name := flag.String("name", "Guest", "display name used in the welcome message")

	flag.Parse()

	role, err := profile.ParseRole(*roleFlag)
	if err != nil {
		log.Fatalf("invalid role: %v", err)
	}

	var opts []advisor.Option
	if *seed != 0 {
		opts = append(opts, advisor.WithSeed(*seed))
	}
	adv := advisor.New(opts...)

	if *playbookPath != "" {
		playbook, err := advisor.LoadPlaybook(*playbookPath)
		if err != nil {
			log.Fatalf("load playbook failed: %v", err)
		}
		if err := adv.ApplyPlaybook(playbook); err != nil {
			log.Fatalf("apply playbook failed: %v", err)
		}
		log.Printf("playbook applied: %s", *playbookPath)
	}

	if *welcome {
		printReply("welcome", adv.Welcome(profile.Profile{DisplayName: *name, Role: role}))
	}

	if *text != "" {
		printReply(*text, adv.Resolve(*text, role))
		return
	}

	fmt.Fprintln(os.Stderr, "reading utterances from stdin, one per line (Ctrl+D to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		utterance := strings.TrimSpace(scanner.Text())
		if utterance == "" {
			continue
		}
		printReply(utterance, adv.Resolve(utterance, role))
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read stdin failed: %v", err)
	}
}

func printReply(utterance string, reply advisor.Reply) {
	fmt.Printf("[%s] %s\n", reply.Topic, utterance)
	fmt.Println(reply.Text)
	for _, suggestion := range reply.Suggestions {
		fmt.Printf("  • %s\n", suggestion)
	}
	fmt.Println()
}
