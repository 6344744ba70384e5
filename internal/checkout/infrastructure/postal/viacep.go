// 生成摘要：viaCEP 邮编查询客户端，仅用于地址预填，失败时静默返回空。
package postal

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
	"github.com/wyfcoding/pkg/logging"
)

const defaultBaseURL = "https://viacep.com.br"

// ViaCEPClient viaCEP 查询客户端
type ViaCEPClient struct {
	http *resty.Client
}

// NewViaCEPClient 创建 viaCEP 客户端，baseURL 为空时使用公共服务
func NewViaCEPClient(baseURL string) *ViaCEPClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(3 * time.Second)
	return &ViaCEPClient{http: c}
}

type viaCEPResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// Lookup 查询邮编。传输错误、非 2xx、erro 标记均视为查不到，
// 返回 (nil, nil) 让调用方跳过预填。
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (*domain.PostalAddress, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cep)
	if len(digits) != 8 {
		return nil, nil
	}

	var body viaCEPResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/ws/" + digits + "/json/")
	if err != nil || resp.IsError() || body.Erro {
		logging.Debug(ctx, "postal lookup miss", "cep", digits)
		return nil, nil
	}

	return &domain.PostalAddress{
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
