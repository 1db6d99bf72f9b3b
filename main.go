package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"auto_blog_publisher/config"
	"auto_blog_publisher/cover"
	"auto_blog_publisher/generator"
	"auto_blog_publisher/history"
	"auto_blog_publisher/pipeline"
	"auto_blog_publisher/publisher"
	"auto_blog_publisher/server"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config/config.json", "path to config.json")
	serve := flag.Bool("serve", false, "start web server with the trigger endpoint")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pipe, err := buildPipeline(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Web server mode: an external cron hits /run-blogger to start a job.
	if *serve {
		srv, err := server.New(pipe, cfg.TriggerSecret, log.Default())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// One-shot mode: run a single publish job to completion.
	ctx := context.Background()
	link, err := pipe.Run(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Printf("[cli] publish done url=%s", link)
	fmt.Println(link)
}

func buildPipeline(cfg config.Config) (*pipeline.Pipeline, error) {
	llm, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		return nil, err
	}
	renderer, err := cover.NewRenderer(cfg.BackgroundPath, cfg.FontPath)
	if err != nil {
		return nil, err
	}
	wp, err := publisher.New(cfg.WordPress, nil, verbose, log.Default())
	if err != nil {
		return nil, err
	}
	ledger := history.NewLedger(cfg.HistoryPath)

	return pipeline.New(agent, renderer, wp, ledger, cfg.Domains, cfg.Categories, cfg.CharsPerLine, log.Default())
}

func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return nil, fmt.Errorf("llm config missing; please set llm.provider/model/api_key in config")
	}
	switch cfg.LLM.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "deepseek":
		// DeepSeek 提供 OpenAI 兼容接口，需填写 base_url。
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "mock":
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
