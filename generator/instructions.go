package generator

import (
	"fmt"
	"strings"
)

type labeledField struct {
	label string
	value string
}

func joinFields(fields []labeledField) string {
	var b strings.Builder
	for _, f := range fields {
		v := strings.TrimSpace(f.value)
		if v == "" || v == "None" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", f.label, v)
	}
	return b.String()
}

// generateEngineRules returns per-engine formatting rules for the
// prompt generator.
func generateEngineRules(mediaType, targetEngine, aspectRatio string) string {
	switch {
	case targetEngine == "Midjourney v6":
		return "Write a highly complex, comma-separated string of professional tags. " +
			"Order: Subject, Setting, Medium, Lighting, Camera, Render. Use advanced cinematic terminology. " +
			"Append exactly '--ar " + aspectRatio + " --v 6.0' to the very end. Do not use full sentences."
	case targetEngine == "DALL-E 3":
		return "Write an incredibly descriptive, vivid, flowing paragraph. " +
			"Seamlessly integrate the provided parameters into a natural narrative. Keep it under 100 words."
	case targetEngine == "Stable Diffusion XL" || targetEngine == "Flux.1 Pro":
		return "Use advanced Danbooru-style tag weightings. " +
			"Start the prompt with '(masterpiece, best quality, ultra-detailed, photorealistic:1.2)'. " +
			"Separate concepts with commas. Be exhaustively detailed."
	case mediaType == "video":
		return "Focus on cinematic motion, physics, and time. Use dense, comma-separated keywords. " +
			"DO NOT write long paragraphs. End with '4k, 60fps, cinematic motion blur'."
	}
	return ""
}

// BuildGenerateInstruction assembles the system and user instructions
// for the prompt generator tool. Scene elements and style metadata are
// kept apart so camera brands and render engines stay out of the
// physical scene.
func BuildGenerateInstruction(in GenerateInput) (system, user string) {
	scene := "Subject: " + in.Subject + "\n" + joinFields([]labeledField{
		{"Action", in.Action},
		{"Setting", in.Setting},
		{"Era", in.Era},
	})

	styleFields := []labeledField{
		{"Medium", in.Medium},
		{"Texture", in.Texture},
		{"Lighting", in.Lighting},
		{"Time Of Day", in.TimeOfDay},
		{"Weather", in.Weather},
		{"Camera Angle", in.CameraAngle},
		{"Composition", in.Composition},
		{"Lens", in.Lens},
		{"Film Stock", in.FilmStock},
		{"Color Grading", in.ColorGrading},
		{"Vfx", in.VFX},
		{"Render Engine", in.RenderEngine},
		{"Mood", in.Mood},
	}
	if in.MediaType == "video" {
		styleFields = append(styleFields, labeledField{"Camera Motion", in.CameraMotion})
	}
	style := joinFields(styleFields)
	if style == "" {
		style = "None specified.\n"
	}

	system = `You are an elite AI prompt engineer. Expand the user's basic concepts into EXACTLY ONE highly detailed, professional AI prompt.

CRITICAL CONSTRAINTS TO PREVENT "TEXT BLEED" AND CRASHES:
1. You MUST use the technical parameters the user provides, but format them so the AI knows they are STYLE METADATA, not physical objects.
2. NEVER just list camera brands. Write "shot on [Brand] film stock", "[Brand] aesthetic", or "rendered in [Engine] style" at the very END of the prompt.
3. Explicitly ensure camera brands and render engines are NOT described as being inside the physical scene (no banners or logos).
4. ABSOLUTE LENGTH LIMIT: Your total response MUST BE STRICTLY UNDER 150 WORDS. Use dense keywords, do not write essays.
5. You MUST generate a negative prompt starting with: "text, typography, logos, watermarks, signs with text, camera brand names, UI," followed by other relevant negative terms.

RULES:
- Target Engine: ` + in.TargetEngine + `
- Specific Engine Rules: ` + generateEngineRules(in.MediaType, in.TargetEngine, in.AspectRatio) + `
- YOU MUST RETURN ONLY A VALID JSON OBJECT. Do not wrap it in a markdown code block.

EXACT FORMAT REQUIRED:
{
  "prompt": "Your dense, highly detailed prompt here... [style metadata here]",
  "negative_prompt": "text, typography, logos, watermarks, ugly, deformed..."
}`

	user = `Expand these concepts into a master prompt.

SCENE ELEMENTS (Describe what is physically happening):
` + scene + `
STYLE METADATA (Apply as aesthetic/camera settings at the end of the prompt):
` + style

	return system, user
}

// BuildEnhanceInstruction assembles the system instruction for the
// prompt enhancer tool.
func BuildEnhanceInstruction(in EnhanceInput) string {
	var engineRules string
	switch {
	case in.TargetEngine == "Midjourney v6":
		engineRules = "Format as a dense, comma-separated string. Use highly advanced photographic and rendering terminology. End with '--v 6.0'."
	case in.TargetEngine == "DALL-E 3":
		engineRules = "Format as a rich, flowing, highly descriptive paragraph. Do not use random camera brands, use natural language."
	case in.TargetEngine == "Stable Diffusion XL" || in.TargetEngine == "Flux.1 Pro":
		engineRules = "Format with Danbooru-style tag weightings. Start with '(masterpiece, best quality, ultra-detailed:1.2)'. Use comma-separated concepts."
	case in.MediaType == "video":
		engineRules = "Focus heavily on motion, camera tracking, fluid dynamics, and temporal changes. End the prompt with '4k, 60fps, cinematic motion blur'. DO NOT write long essays. Keep it dense."
	}

	return `You are an elite AI prompt engineer. The user has provided a basic, unoptimized prompt. Your objective is to ENHANCE and expand it into a professional, studio-quality prompt.

CRITICAL CONSTRAINTS:
1. Preserve the core subject and intent of the user's original idea.
2. Inject professional lighting, camera angles, textures, and atmospheric details suitable for the requested style: [` + in.EnhancementStyle + `].
3. If the media type is Image, focus on composition and lighting. If Video, focus heavily on motion and camera movement.
4. Format the output specifically for [` + in.TargetEngine + `]: ` + engineRules + `
5. EXTREME LENGTH LIMIT: Your enhanced prompt MUST BE STRICTLY UNDER 100 WORDS. Be dense, professional, and concise.
6. ALWAYS generate a relevant negative prompt starting with: "text, typography, logos, watermarks..." (Keep the negative prompt under 40 words).

YOU MUST RETURN ONLY A VALID JSON OBJECT. Do not wrap it in a markdown code block.
{
  "enhanced_prompt": "Your deeply enhanced, highly detailed prompt here...",
  "negative_prompt": "text, typography, logos..."
}`
}

// styleBans maps an avoid-style choice to the tags that suppress it.
func styleBans(avoidStyle string) string {
	switch avoidStyle {
	case "Cartoon & Anime":
		return "anime, cartoon, drawing, illustration, 2d, sketch, cell shaded, comic;"
	case "Photorealism":
		return "photorealistic, photo, camera, realistic, 8k, ultra-detailed, photography;"
	case "3D Render / CGI":
		return "3d render, cgi, octane render, unreal engine, plastic, smooth, clay;"
	case "Vintage / Retro":
		return "vintage, retro, sepia, black and white, old, faded, film grain;"
	case "Painting / Illustration":
		return "painting, oil, brush strokes, watercolor, digital art, stylized;"
	}
	return ""
}

// BuildNegativeInstruction assembles the system instruction for the
// negative prompt generator tool.
func BuildNegativeInstruction(in NegativeInput) string {
	var negativeRules string
	if in.MediaType == "video" {
		negativeRules = "Focus heavily on video artifacts: static, morphing, freezing, jitter, unnatural physics, sudden cuts, bad temporal consistency, lag, low framerate, jerky motion."
	} else {
		negativeRules = "Focus heavily on image artifacts: extra limbs, bad anatomy, deformed hands, fused fingers, cross-eyed, mutated, poorly drawn face, asymmetrical features, flat lighting."
	}

	switch in.TargetEngine {
	case "Stable Diffusion XL", "Flux.1 Pro":
		negativeRules += " Use Danbooru-style tags and brackets for weightings (e.g. (worst quality, low quality:1.4))."
	case "Midjourney v6":
		negativeRules += " Format as a dense, comma-separated list of words. Do not use weights like :1.5."
	case "DALL-E 3":
		negativeRules += " Format as a concise, readable descriptive sentence of what NOT to include."
	}

	bans := styleBans(in.AvoidStyle)

	baseContext := in.BaseContext
	if baseContext == "" {
		baseContext = "General Scene"
	}
	specificBans := in.SpecificBans
	if specificBans == "" {
		specificBans = "None specified."
	}
	if bans == "" {
		bans = "None specified."
	}

	return `You are an elite AI prompt engineer specializing in NEGATIVE PROMPTS. Your only job is to generate a highly detailed, professional negative prompt string to protect the user's AI generation from artifacts and unwanted elements.

CRITICAL CONSTRAINTS:
1. Output ONLY the negative keywords/phrases. Do NOT write full sentences or paragraphs. Use a dense, comma-separated list.
2. ALWAYS include standard universal bans: "text, typography, watermark, logo, signature, username, UI".
3. Apply these media/model rules: ` + negativeRules + `
4. Base Context: ` + baseContext + `
5. Specific elements to BAN: ` + specificBans + `
6. Styles to strictly avoid: ` + bans + `
7. EXTREME LENGTH LIMIT: Your response MUST BE STRICTLY UNDER 60 WORDS. Be concise and ruthless.

YOU MUST RETURN ONLY A VALID JSON OBJECT. Do not wrap it in a markdown code block.
{
  "negative_prompt": "text, watermark, ugly, deformed, [add max 40 more concise words here]"
}`
}
