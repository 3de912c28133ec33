package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sort-bench/internal/config"
	"sort-bench/internal/logger"
	"sort-bench/internal/model"
	"sort-bench/internal/router"
	"sort-bench/internal/service"
	"sort-bench/internal/sorting"
)

const defaultConfigPath = "config/config.yaml"

var errMismatch = errors.New("mismatch detected")

var (
	configPath string

	runSize               int
	runTrials             int
	runSeedBase           int64
	runQuadraticThreshold int

	rootCmd = &cobra.Command{
		Use:           "sortbench",
		Short:         "Benchmark a native sorting routine against a panel of sorting algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark and print the report",
		RunE:  runBenchmark,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve benchmark runs and metrics over HTTP",
		RunE:  runServe,
	}

	algorithmsCmd = &cobra.Command{
		Use:   "algorithms",
		Short: "List the algorithms in the benchmark panel",
		RunE:  runAlgorithms,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the yaml config file")

	runCmd.Flags().IntVar(&runSize, "size", 0, "override benchmark.size")
	runCmd.Flags().IntVar(&runTrials, "trials", 0, "override benchmark.trials")
	runCmd.Flags().Int64Var(&runSeedBase, "seed-base", 0, "override benchmark.seed_base")
	runCmd.Flags().IntVar(&runQuadraticThreshold, "quadratic-threshold", 0, "override benchmark.quadratic_threshold")

	rootCmd.AddCommand(runCmd, serveCmd, algorithmsCmd)
}

// loadConfig 读取配置；默认路径的文件不存在时使用内置默认值
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.DefaultConfig(), nil
	}
	return nil, fmt.Errorf("加载配置失败: %w", err)
}

// setup 加载配置、构造日志并解析原生排序库；库无法解析时直接退出
func setup(cmd *cobra.Command, opts ...service.RunnerOption) (*service.ServiceContext, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(os.Stderr, cfg.Log)
	if err != nil {
		return nil, err
	}
	svc, err := service.NewServiceContext(cfg, log, opts...)
	if err != nil {
		log.Fatal("native sorter unavailable", zap.String("library", cfg.Native.Library), zap.Error(err))
	}
	return svc, nil
}

func consoleMarks() service.TrialMarks {
	marks := service.DefaultTrialMarks
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	marks.Pass = green(marks.Pass)
	marks.Fail = red(marks.Fail)
	marks.Panic = red(marks.Panic)
	marks.Skip = yellow(marks.Skip)
	marks.Correct = green(marks.Correct)
	marks.Failed = red(marks.Failed)
	return marks
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	marks := consoleMarks()
	svc, err := setup(cmd, service.WithTrialObserver(func(summary model.TrialSummary, timings []model.AlgorithmTiming) {
		fmt.Fprintln(out, service.RenderTrial(summary, timings, marks))
	}))
	if err != nil {
		return err
	}
	defer func() { _ = svc.Logger.Sync() }()

	req := svc.DefaultRequest()
	flags := cmd.Flags()
	if flags.Changed("size") {
		req.Size = runSize
	}
	if flags.Changed("trials") {
		req.Trials = runTrials
	}
	if flags.Changed("seed-base") {
		req.SeedBase = runSeedBase
	}
	if flags.Changed("quadratic-threshold") {
		req.QuadraticThreshold = runQuadraticThreshold
	}

	result, err := svc.Runner.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprint(out, service.RenderReport(result))

	if result.Failures > 0 {
		return fmt.Errorf("%d/%d trials: %w", result.Failures, req.Trials, errMismatch)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Logger.Sync() }()

	r := router.SetupRouter(svc)

	addr := fmt.Sprintf(":%d", svc.Config.Server.Port)
	svc.Logger.Info("服务启动", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		return fmt.Errorf("启动服务失败: %w", err)
	}
	return nil
}

func runAlgorithms(cmd *cobra.Command, args []string) error {
	svc, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, s := range svc.Runner.Sorters() {
		suffix := ""
		if sorting.IsQuadratic(s) {
			suffix = fmt.Sprintf("  (skipped above n=%d)", svc.Config.Benchmark.QuadraticThreshold)
		}
		fmt.Fprintf(out, "%2d. %s%s\n", i+1, s.Name(), suffix)
	}
	return nil
}
