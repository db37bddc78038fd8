package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa a configuração da aplicação (leitura via Viper de env e
// opcionalmente arquivo).
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	JWT         JWTConfig
	Planilha    PlanilhaConfig
	Redis       RedisConfig
	Notificacao NotificacaoConfig
}

// AppConfig configuração geral da aplicação.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuração do servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devolve o endereço de escuta (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuração de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// PlanilhaConfig configuração do armazenamento tabular.
// Caminho vazio liga o modo dev (pasta de trabalho só em memória).
type PlanilhaConfig struct {
	Caminho string // ex.: ./dados/estoque.xlsx
}

// RedisConfig configuração do cache de leitura (opcional).
type RedisConfig struct {
	Habilitado  bool
	Addr        string
	Password    string
	DB          int
	TTLSegundos int
}

// NotificacaoConfig configuração do gateway de aviso de expedição.
// WebhookURL vazio desliga o envio.
type NotificacaoConfig struct {
	WebhookURL string
	Destino    string // número/grupo destinatário no gateway
}

// Load lê a configuração de variáveis de ambiente (e opcionalmente de um
// arquivo .env). As env vars têm prioridade. Nomes esperados: APP_ENV,
// HTTP_PORT, JWT_SECRET, PLANILHA_CAMINHO, REDIS_ADDR etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: arquivo de configuração .env na raiz.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos erro se não existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "estoque-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480), // um turno
			Issuer:     getString(v, "JWT_ISSUER", "estoque-api"),
		},
		Planilha: PlanilhaConfig{
			Caminho: getString(v, "PLANILHA_CAMINHO", ""),
		},
		Redis: RedisConfig{
			Habilitado:  getBool(v, "REDIS_HABILITADO", false),
			Addr:        getString(v, "REDIS_ADDR", "localhost:6379"),
			Password:    getString(v, "REDIS_PASSWORD", ""),
			DB:          getInt(v, "REDIS_DB", 0),
			TTLSegundos: getInt(v, "REDIS_TTL_SEGUNDOS", 60),
		},
		Notificacao: NotificacaoConfig{
			WebhookURL: getString(v, "NOTIFICACAO_WEBHOOK_URL", ""),
			Destino:    getString(v, "NOTIFICACAO_DESTINO", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
