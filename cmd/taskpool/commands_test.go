package main

import (
	"bytes"
	"context"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/taskpool/internal/config"
	srvErrors "github.com/kubev2v/taskpool/pkg/errors"
)

var _ = Describe("Commands", func() {
	Context("version", func() {
		It("should print the version", func() {
			out := &bytes.Buffer{}
			cmd := newRootCommand()
			cmd.SetOut(out)
			cmd.SetArgs([]string{"version"})

			Expect(cmd.Execute()).To(Succeed())
			Expect(out.String()).To(ContainSubstring("taskpool"))
			Expect(out.String()).To(ContainSubstring(version))
		})
	})

	Context("run", func() {
		It("should reject a zero pool size flag", func() {
			cmd := newRootCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"run", "--pool-size", "0"})

			err := cmd.Execute()
			Expect(srvErrors.IsConfigError(err)).To(BeTrue())
		})

		It("should read flags from the environment", func() {
			GinkgoT().Setenv("TASKPOOL_LOG_FORMAT", "xml")

			cmd := newRootCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{"run"})

			err := cmd.Execute()
			Expect(srvErrors.IsConfigError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("log-format"))
		})

		It("should fail when the statics folder has no pages", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithServer(*config.NewServerWithOptionsAndDefaults(config.WithStaticsFolder(GinkgoT().TempDir()))),
			)

			err := run(context.Background(), cfg)
			Expect(err).To(MatchError(ContainSubstring("hello.html")))
		})

		// Given a valid configuration
		// When the context is cancelled while the server runs
		// Then run stops the server, closes the pool and returns nil
		It("should serve until the context is done", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithServer(*config.NewServerWithOptionsAndDefaults(
					config.WithAddress("127.0.0.1:0"),
					config.WithMode(config.ServerModeProd),
					config.WithStaticsFolder(filepath.Join("..", "..", "static")),
				)),
				config.WithPool(*config.NewPoolWithOptionsAndDefaults(config.WithSize(2))),
				config.WithLogLevel("error"),
			)

			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() {
				errCh <- run(ctx, cfg)
			}()

			Consistently(errCh, 300*time.Millisecond).ShouldNot(Receive())
			cancel()

			var err error
			Eventually(errCh, 5*time.Second).Should(Receive(&err))
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("logger", func() {
		DescribeTable("should build a logger",
			func(format, level string) {
				logger, err := newLogger(format, level)
				Expect(err).NotTo(HaveOccurred())
				Expect(logger).NotTo(BeNil())
			},
			Entry("console", config.LogFormatConsole, "debug"),
			Entry("json", config.LogFormatJSON, "warn"),
		)

		It("should reject an unknown level", func() {
			_, err := newLogger(config.LogFormatJSON, "loud")
			Expect(err).To(HaveOccurred())
		})
	})
})
