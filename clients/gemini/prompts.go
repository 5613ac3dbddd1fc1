package gemini

const mainSummaryPrompt = `Summarize the following meeting in %s.

Include clearly:
- Key discussion points
- Decisions taken
- Action items
- Deadlines / timelines
- Responsibilities / owners

Keep it concise but complete.

TRANSCRIPT:
%s`

const focusedSummaryPrompt = `You are an expert meeting insight extraction engine.

USER CONCEPT PROMPT (FOCUS TOPICS):
%s

YOUR JOB:
Extract ONLY the information from the meeting that is relevant to the user's conceptual topics above.
Examples of conceptual topics: "deadlines and responsibilities", "actions and decisions", "risks",
"budget approvals", "client complaints", etc.

You MUST:
- Identify decisions related to the focus topics
- Identify responsibilities and owners related to the focus topics
- Identify action items related to the focus topics
- Identify deadlines or timelines if they are mentioned or clearly implied
- Use the transcript content and reasonable inference (never random guessing)
- Ignore all unrelated conversation

STRICT OUTPUT RULES:
- OUTPUT MUST ALWAYS BE IN ENGLISH
- OUTPUT MUST BEGIN IMMEDIATELY WITH BULLET POINTS (%s ...)
- DO NOT write any introduction, explanation, or commentary
- DO NOT say things like "Here is", "Okay", "I will", "Based on"
- DO NOT apologize
- DO NOT refuse
- DO NOT mention the transcript itself
- DO NOT hallucinate facts that are not supported or reasonably implied

IF THERE IS NO CLEAR, RELEVANT INFORMATION:
- Output exactly ONE bullet stating that no relevant information was found

TRANSCRIPT:
%s`

const insightsPrompt = `Extract structured meeting intelligence from the transcript.

OUTPUT JSON EXACTLY IN THIS FORMAT:
{
  "actions": [
    { "task": "...", "owner": "...", "deadline": "..." }
  ],
  "decisions": ["..."],
  "owners": [
    { "person": "...", "responsibility": "..." }
  ],
  "risks": ["..."]
}

RULES:
- Infer missing information if implied (e.g., "you check this" means assign to the speaker)
- Leave fields as empty strings "" if unknown (do NOT invent)
- No apologies
- No explanations
- ONLY return valid JSON that matches the structure above.

TRANSCRIPT:
%s`

const diarizePrompt = `Rewrite the transcript with inferred speaker labels like Speaker 1, Speaker 2, etc.

Example format:
Speaker 1: ...
Speaker 2: ...
Speaker 1: ...

TRANSCRIPT:
%s`
