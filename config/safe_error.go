package config

// SafeErrorMessage release 模式下不向客户端暴露内部错误详情
func SafeErrorMessage(mode string, err error, fallback string) string {
	if err == nil || mode == "release" {
		return fallback
	}
	return err.Error()
}
