package main

import (
	"context"
	"flag"
	"os"

	"github.com/songzhibin97/solscout/internal/configs"
	"github.com/songzhibin97/solscout/internal/data"
	"github.com/songzhibin97/solscout/internal/data/collector"
	"github.com/songzhibin97/solscout/internal/data/collector/dexscreener"
	"github.com/songzhibin97/solscout/internal/data/collector/gmgn"
	"github.com/songzhibin97/solscout/internal/notify"
	"github.com/songzhibin97/solscout/internal/pipeline"
	"github.com/songzhibin97/solscout/internal/risk"
	"github.com/songzhibin97/solscout/internal/social"
	"github.com/songzhibin97/solscout/internal/utils/logger"
)

var (
	flagconf string
	flagenv  string

	log = logger.New(os.Stdout)
)

func init() {
	flag.StringVar(&flagconf, "conf", "", "config path, eg: -conf config.yaml")
	flag.StringVar(&flagenv, "env", ".env", "env file with TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID")
}

func main() {
	flag.Parse()

	// 加载配置
	config, err := configs.Load(flagconf, flagenv)
	if err != nil {
		log.Error("Error loading config", "err", err)
		return
	}

	log.Debug("Loaded config", "conf", flagconf, "gmgn", config.Sources.GMGNURL, "dexscreener", config.Sources.DexscreenerURL)

	if config.Proxy != "" {
		_ = os.Setenv("HTTP_PROXY", config.Proxy)
		_ = os.Setenv("HTTPS_PROXY", config.Proxy)
		log.Debug("set proxy ok", "proxy", config.Proxy)
	}

	if config.HasPlaceholderCredentials() {
		log.Warn("telegram bot token or chat id is still a placeholder, notifications will fail")
	}

	// 初始化各个组件，顺序即执行顺序
	sources := []data.TokenSource{
		gmgn.NewGMGNDataSource(config.Sources.GMGNURL),
		dexscreener.NewDexscreenerDataSource(config.Sources.DexscreenerURL),
	}

	p := pipeline.New(
		risk.NewRugcheckClient(config.Rugcheck.URL),
		social.NewTweetscoutClient(config.Tweetscout.URL),
		notify.NewTelegramNotifier(config.Telegram.APIBase, config.Telegram.BotToken, config.Telegram.ChatID, log),
		log,
	)

	log.Debug("init pipeline")

	failed := collector.NewSequentialCollector(sources, p, log).Collect(context.Background())

	log.Info("run finished", "sources", len(sources), "failed", failed)
}
