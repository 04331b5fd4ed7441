package response

const DefaultErrorMessage = "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
