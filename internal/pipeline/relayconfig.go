package pipeline

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"text/template"
)

// relayConfTemplate is the service configuration installed on the instance.
// The service reads its credential from the secret store at startup; the
// credential itself never lands on disk.
var relayConfTemplate = template.Must(template.New("relay.conf").Parse(
	`# relay service configuration, generated by relayctl
environment = {{ .Environment }}
listen_port = {{ .Port }}
region = {{ .Region }}
credential_secret = {{ .SecretName }}
log_group = {{ .LogGroup }}
data_dir = /var/lib/relay
`))

type relayConfParams struct {
	Environment string
	Port        int
	Region      string
	SecretName  string
	LogGroup    string
}

func renderRelayConf(params relayConfParams) (string, error) {
	var buf bytes.Buffer
	if err := relayConfTemplate.Execute(&buf, params); err != nil {
		return "", fmt.Errorf("failed to render relay configuration: %w", err)
	}
	return buf.String(), nil
}

// rolloutCommands is the remote script that installs and starts the relay
// service. The configuration travels base64-encoded to survive shell
// quoting.
func rolloutCommands(conf string, port int) []string {
	encoded := base64.StdEncoding.EncodeToString([]byte(conf))
	return []string{
		"set -euo pipefail",
		"sudo mkdir -p /etc/relay /var/lib/relay",
		fmt.Sprintf("echo %s | base64 -d | sudo tee /etc/relay/relay.conf >/dev/null", encoded),
		"sudo dnf -y -q install docker",
		"sudo systemctl enable --now docker",
		"sudo docker rm -f relay 2>/dev/null || true",
		fmt.Sprintf("sudo docker run -d --name relay --restart unless-stopped"+
			" -p %d:%d -v /etc/relay:/etc/relay:ro -v /var/lib/relay:/var/lib/relay"+
			" public.ecr.aws/relayops/relay:latest", port, port),
	}
}

// newCredential generates the random credential material stored in the
// secret at first deployment.
func newCredential() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate credential: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
