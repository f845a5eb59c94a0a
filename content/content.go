// Package content holds the portfolio copy shown by the hosts: bio, skills,
// projects, links, the music playlist and the terminal's canned answers.
package content

import (
	"errors"
	"fmt"
	"os"

	"roboshep/playlist"
	"roboshep/terminal"

	"gopkg.in/yaml.v3"
)

type Project struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// TerminalTexts are the strings answered by the terminal widget.
type TerminalTexts struct {
	Welcome string `yaml:"welcome"`
	Help    string `yaml:"help"`
	About   string `yaml:"about"`
	Skills  string `yaml:"skills"`
}

// Content is everything a host renders that is not code.
type Content struct {
	Name     string           `yaml:"name"`
	Alias    string           `yaml:"alias"`
	Intro    string           `yaml:"intro"`
	About    string           `yaml:"about"` // markdown
	Skills   []string         `yaml:"skills"`
	Projects []Project        `yaml:"projects"`
	Links    []Link           `yaml:"links"`
	Tracks   []playlist.Track `yaml:"tracks"`
	Terminal TerminalTexts    `yaml:"terminal"`
}

// Default returns the built-in portfolio.
func Default() *Content {
	texts := terminal.DefaultTexts()
	return &Content{
		Name:  "Anant Srivastava",
		Alias: "RoboShep",
		Intro: "I am a Software Engineer focused on building robust full-stack applications and " +
			"exploring the mechanics of artificial intelligence. Welcome to my interactive space.",
		About: "My journey in tech often revolves around optimizing complex systems and game AI, digging deep into " +
			"everything from low-level algorithms to neural networks like **PPOs** and **LSTMs**. Whether I'm designing " +
			"state machines, working with theoretical models like Turing machines, or building seamless web interfaces " +
			"with React and Express, I love bridging the gap between raw logic and user experience.",
		Skills: []string{
			"MongoDB", "React", "ExpressJS", "NodeJS", "Docker", "n8n",
			"Python", "PyTorch", "Git", "GitHub", "PostgreSQL", "HTML",
			"CSS", "JS", "C", "C++", "Bash", "Arch Linux",
		},
		Projects: []Project{
			{Title: "Project S.A.R.S", Description: "It is a self trained Neural network in which a human competes against an AI trained by me"},
			{Title: "Project Carpet", Description: "A World generator using Perlin noise to generate a pre determined world"},
			{Title: "Project HumanVAI", Description: "A human races against a perfect AI (In Progress)"},
			{Title: "Project LegalSLM", Description: "An SLM trained on the Indian Legal burecracy (In Progress)"},
		},
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/Robo-shep"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/anant-srivastava-023585329/"},
			{Label: "LeetCode", URL: "https://leetcode.com/u/Roboshep/"},
		},
		Tracks: []playlist.Track{
			{ID: 1, Title: "Chill Lofi Beat", Src: "/music/track1.mp3"},
			{ID: 2, Title: "Focus Flow", Src: "/music/track2.mp3"},
			{ID: 3, Title: "Late Night Coding", Src: "/music/track3.mp3"},
		},
		Terminal: TerminalTexts{
			Welcome: texts.Welcome,
			Help:    texts.Help,
			About:   texts.About,
			Skills:  texts.Skills,
		},
	}
}

// Load reads a content file over the defaults. An empty path returns the
// defaults. Lists given in the file replace the built-in lists.
func Load(path string) (*Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse content %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content %s: %w", path, err)
	}
	return c, nil
}

func (c *Content) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if len(c.Tracks) == 0 {
		return errors.New("at least one track is required")
	}
	return nil
}

// TerminalOptions converts the terminal texts into interpreter options.
func (c *Content) TerminalOptions() []terminal.Option {
	return []terminal.Option{terminal.WithTexts(terminal.Texts{
		Welcome: c.Terminal.Welcome,
		Help:    c.Terminal.Help,
		About:   c.Terminal.About,
		Skills:  c.Terminal.Skills,
	})}
}
