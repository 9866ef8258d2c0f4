package config_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/taskpool/internal/config"
	srvErrors "github.com/kubev2v/taskpool/pkg/errors"
)

var _ = Describe("Configuration", func() {
	Context("defaults", func() {
		It("should fill every section", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.Server.Address).To(Equal("127.0.0.1:5000"))
			Expect(cfg.Server.Mode).To(Equal(config.ServerModeDev))
			Expect(cfg.Server.StaticsFolder).To(Equal("static"))
			Expect(cfg.Server.SleepDuration).To(Equal(5 * time.Second))
			Expect(cfg.Server.BindRetries).To(BeEquivalentTo(5))
			Expect(cfg.Pool.Size).To(Equal(8))
			Expect(cfg.Pool.Name).To(Equal("http"))
			Expect(cfg.LogFormat).To(Equal(config.LogFormatConsole))
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should let options override defaults", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithPool(*config.NewPoolWithOptionsAndDefaults(config.WithSize(2))),
				config.WithServer(*config.NewServerWithOptionsAndDefaults(config.WithAddress(":8080"), config.WithMode(config.ServerModeProd))),
				config.WithLogFormat(config.LogFormatJSON),
			)

			Expect(cfg.Pool.Size).To(Equal(2))
			Expect(cfg.Pool.Name).To(Equal("http"))
			Expect(cfg.Server.Address).To(Equal(":8080"))
			Expect(cfg.Server.SleepDuration).To(Equal(5 * time.Second))
			Expect(cfg.LogFormat).To(Equal(config.LogFormatJSON))
		})
	})

	Context("Validate", func() {
		DescribeTable("should reject invalid values",
			func(opt config.ConfigurationOption, field string) {
				cfg := config.NewConfigurationWithOptionsAndDefaults(opt)

				err := cfg.Validate()
				Expect(srvErrors.IsConfigError(err)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring(field))
			},
			Entry("zero pool size", config.WithPool(config.Pool{Size: 0}), "pool.size"),
			Entry("negative pool size", config.WithPool(config.Pool{Size: -1}), "pool.size"),
			Entry("empty address", config.WithServer(config.Server{Mode: "dev"}), "server.address"),
			Entry("unknown mode", config.WithServer(config.Server{Address: ":1", Mode: "test"}), "server.mode"),
			Entry("negative sleep", config.WithServer(config.Server{Address: ":1", Mode: "dev", SleepDuration: -time.Second}), "server.sleep-duration"),
			Entry("unknown log format", config.WithLogFormat("xml"), "log-format"),
			Entry("unknown log level", config.WithLogLevel("loud"), "log-level"),
		)
	})

	Context("DebugMap", func() {
		It("should expose all sections", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			m := cfg.DebugMap()

			Expect(m).To(HaveKeyWithValue("LogLevel", "info"))
			Expect(m).To(HaveKeyWithValue("LogFormat", "console"))
			Expect(m).To(HaveKeyWithValue("Pool", "{8 http}"))
			Expect(m["Server"]).To(ContainSubstring("127.0.0.1:5000"))
			Expect(m["Server"]).To(ContainSubstring("5s"))
		})

		It("should keep field values of a section", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.Pool.DebugMap()).To(HaveKeyWithValue("Size", 8))
			Expect(cfg.Server.DebugMap()).To(HaveKeyWithValue("SleepDuration", 5*time.Second))
			Expect(cfg.Server.DebugMap()).To(HaveKeyWithValue("BindRetries", uint(5)))
		})

		It("should mark empty values", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(config.WithLogLevel(""))

			Expect(cfg.DebugMap()).To(HaveKeyWithValue("LogLevel", "(empty)"))
		})

		It("should survive a round trip through ToOption", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(config.WithLogLevel("debug"))
			copied := config.NewConfigurationWithOptions(cfg.ToOption())

			Expect(copied.DebugMap()).To(Equal(cfg.DebugMap()))
		})
	})
})
